package env

import "fmt"

// ServerAccessor reads server variables on demand. Every read checks the
// target first and fails with *AccessViolationError on a browser, before the
// environment is parsed.
type ServerAccessor struct {
	env *Env
}

func (a ServerAccessor) load(field string) (*ServerEnv, error) {
	if a.env.target == TargetBrowser {
		err := &AccessViolationError{Field: field}
		a.env.observe(ContextServer, err)
		return nil, err
	}
	return a.env.ServerEnv()
}

// Get reads any server field by name, see ServerEnv.Get.
func (a ServerAccessor) Get(field string) (any, error) {
	s, err := a.load(field)
	if err != nil {
		return nil, err
	}

	v, ok := s.Get(field)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return v, nil
}

func (a ServerAccessor) NodeEnv() (NodeEnv, error) {
	s, err := a.load(KeyNodeEnv)
	if err != nil {
		return "", err
	}
	return s.NodeEnv(), nil
}

func (a ServerAccessor) Port() (int, bool, error) {
	s, err := a.load(KeyPort)
	if err != nil {
		return 0, false, err
	}
	port, ok := s.Port()
	return port, ok, nil
}

func (a ServerAccessor) CookieSecret() (string, error) {
	s, err := a.load(KeyCookieSecret)
	if err != nil {
		return "", err
	}
	return s.CookieSecret(), nil
}

func (a ServerAccessor) IsDev() (bool, error) {
	s, err := a.load(FieldIsDev)
	if err != nil {
		return false, err
	}
	return s.IsDev(), nil
}

func (a ServerAccessor) IsProd() (bool, error) {
	s, err := a.load(FieldIsProd)
	if err != nil {
		return false, err
	}
	return s.IsProd(), nil
}

func (a ServerAccessor) IsTest() (bool, error) {
	s, err := a.load(FieldIsTest)
	if err != nil {
		return false, err
	}
	return s.IsTest(), nil
}

// ClientAccessor reads client variables on demand from any target.
type ClientAccessor struct {
	env *Env
}

func (a ClientAccessor) Get(field string) (any, error) {
	c, err := a.env.ClientEnv()
	if err != nil {
		return nil, err
	}

	v, ok := c.Get(field)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return v, nil
}

func (a ClientAccessor) NodeEnv() (NodeEnv, error) {
	c, err := a.env.ClientEnv()
	if err != nil {
		return "", err
	}
	return c.NodeEnv(), nil
}

func (a ClientAccessor) AppURL() (string, error) {
	c, err := a.env.ClientEnv()
	if err != nil {
		return "", err
	}
	return c.AppURL(), nil
}

func (a ClientAccessor) IsDev() (bool, error) {
	c, err := a.env.ClientEnv()
	if err != nil {
		return false, err
	}
	return c.IsDev(), nil
}

func (a ClientAccessor) IsProd() (bool, error) {
	c, err := a.env.ClientEnv()
	if err != nil {
		return false, err
	}
	return c.IsProd(), nil
}

func (a ClientAccessor) IsTest() (bool, error) {
	c, err := a.env.ClientEnv()
	if err != nil {
		return false, err
	}
	return c.IsTest(), nil
}
