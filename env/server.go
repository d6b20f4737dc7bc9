package env

// ServerEnv is the validated server domain. It is never modified after parsing.
type ServerEnv struct {
	modeFlags

	nodeEnv      NodeEnv
	port         int
	cookieSecret string
}

func parseServerEnv(src Source) (*ServerEnv, error) {
	values, err := parseValues(ContextServer, serverSchema, src)
	if err != nil {
		return nil, err
	}

	mode := NodeEnv(values.String(KeyNodeEnv))
	port, _ := values.Int(KeyPort)

	return &ServerEnv{
		modeFlags:    newModeFlags(mode),
		nodeEnv:      mode,
		port:         port,
		cookieSecret: values.String(KeyCookieSecret),
	}, nil
}

func (s *ServerEnv) NodeEnv() NodeEnv { return s.nodeEnv }

// Port returns PORT and whether it was set.
func (s *ServerEnv) Port() (int, bool) { return s.port, s.port != 0 }

func (s *ServerEnv) CookieSecret() string { return s.cookieSecret }

// Get reads a field by its variable name or derived flag name. An unset PORT
// reads as nil. The boolean is false for names the domain does not define.
func (s *ServerEnv) Get(field string) (any, bool) {
	switch field {
	case KeyNodeEnv:
		return s.nodeEnv, true
	case KeyPort:
		if port, ok := s.Port(); ok {
			return port, true
		}
		return nil, true
	case KeyCookieSecret:
		return s.cookieSecret, true
	}
	return s.modeFlags.get(field)
}
