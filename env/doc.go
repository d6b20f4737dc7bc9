// Package env validates the process environment and exposes it as typed values
// split into two trust domains.
//
// The server domain holds sensitive variables (secrets, ports) and reads the
// whole environment. The client domain holds values that are safe to ship to a
// browser and reads only an explicit allow-list of variable names.
//
// An *Env built once by the composition root owns one cache slot per domain:
//
//	e := env.New(env.OS())
//	if err := e.Validate(); err != nil {
//		// *env.ValidationError lists every missing or invalid variable
//	}
//
//	secret, err := e.Server().CookieSecret()
//	appURL, err := e.Client().AppURL()
//
// Server values read through e.Server() fail with *AccessViolationError when
// the Env was built for a browser target.
package env
