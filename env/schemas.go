package env

import "github.com/angeloszaimis/typesafe-env/env/schema"

// NodeEnv is the deployment mode shared by both domains.
type NodeEnv string

const (
	Development NodeEnv = "development"
	Production  NodeEnv = "production"
	Test        NodeEnv = "test"
)

const (
	KeyNodeEnv      = "NODE_ENV"
	KeyPort         = "PORT"
	KeyCookieSecret = "COOKIE_SECRET"
	KeyAppURL       = "NEXT_PUBLIC_APP_URL"
)

// Derived field names, readable through Get.
const (
	FieldIsDev  = "isDev"
	FieldIsProd = "isProd"
	FieldIsTest = "isTest"
)

// Validators, re-exported for callers composing their own schemas.
type (
	Field  = schema.Field
	Issue  = schema.Issue
	Schema = schema.Schema
)

var (
	Enum           = schema.Enum
	RequiredString = schema.RequiredString
	RequiredURL    = schema.RequiredURL
	RequiredSecret = schema.RequiredSecret
	OptionalPort   = schema.OptionalPort
	Custom         = schema.Custom
)

var (
	serverSchema = schema.New(
		nodeEnvField(),
		schema.OptionalPort(KeyPort),
		schema.RequiredSecret(KeyCookieSecret, schema.DefaultSecretLength),
	)

	clientSchema = schema.New(
		nodeEnvField(),
		schema.RequiredURL(KeyAppURL),
	)

	// clientKeys is everything the client domain may read from the source.
	// A new public variable has to be added here as well as to clientSchema;
	// nothing else in the environment ever reaches the client domain.
	clientKeys = []string{
		KeyNodeEnv,
		KeyAppURL,
	}
)

func nodeEnvField() schema.Field {
	return schema.Enum(KeyNodeEnv, string(Development), string(Production), string(Test))
}

// ServerSchema returns the schema of the server domain.
func ServerSchema() *schema.Schema { return serverSchema }

// ClientSchema returns the schema of the client domain.
func ClientSchema() *schema.Schema { return clientSchema }

// ClientKeys returns the allow-list of variables the client domain reads.
func ClientKeys() []string {
	return append([]string(nil), clientKeys...)
}

type modeFlags struct {
	isDev  bool
	isProd bool
	isTest bool
}

func newModeFlags(mode NodeEnv) modeFlags {
	return modeFlags{
		isDev:  mode == Development,
		isProd: mode == Production,
		isTest: mode == Test,
	}
}

func (m modeFlags) IsDev() bool  { return m.isDev }
func (m modeFlags) IsProd() bool { return m.isProd }
func (m modeFlags) IsTest() bool { return m.isTest }

func (m modeFlags) get(field string) (any, bool) {
	switch field {
	case FieldIsDev:
		return m.isDev, true
	case FieldIsProd:
		return m.isProd, true
	case FieldIsTest:
		return m.isTest, true
	}
	return nil, false
}
