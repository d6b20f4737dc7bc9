package env

// ClientEnv is the validated client domain. Every value in it is safe to expose
// to a browser.
type ClientEnv struct {
	modeFlags

	nodeEnv NodeEnv
	appURL  string
}

func parseClientEnv(src Source) (*ClientEnv, error) {
	values, err := parseValues(ContextClient, clientSchema, newAllowList(src, clientKeys))
	if err != nil {
		return nil, err
	}

	mode := NodeEnv(values.String(KeyNodeEnv))

	return &ClientEnv{
		modeFlags: newModeFlags(mode),
		nodeEnv:   mode,
		appURL:    values.String(KeyAppURL),
	}, nil
}

func (c *ClientEnv) NodeEnv() NodeEnv { return c.nodeEnv }

// AppURL returns NEXT_PUBLIC_APP_URL.
func (c *ClientEnv) AppURL() string { return c.appURL }

func (c *ClientEnv) Get(field string) (any, bool) {
	switch field {
	case KeyNodeEnv:
		return c.nodeEnv, true
	case KeyAppURL:
		return c.appURL, true
	}
	return c.modeFlags.get(field)
}
