package env_test

import (
	"encoding/json"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/angeloszaimis/typesafe-env/env"
)

var _ = Describe("ValidationError", func() {
	var verr *env.ValidationError

	BeforeEach(func() {
		verr = env.NewValidationError(env.ContextServer, []env.FieldError{
			{Variable: "COOKIE_SECRET", Message: "COOKIE_SECRET is required", Code: "validation_required"},
		})
	})

	It("should render the formatted report byte for byte", func() {
		divider := strings.Repeat("─", 60)
		want := "\n" +
			"Server Environment Validation Failed\n" +
			divider + "\n" +
			"\n" +
			"Missing or invalid environment variables:\n" +
			"\n" +
			"  ✗ COOKIE_SECRET\n" +
			"    └─ COOKIE_SECRET is required\n" +
			"\n" +
			divider + "\n" +
			"\n" +
			"Create a .env.local file with the required variables.\n"

		Expect(verr.FormattedMessage()).To(Equal(want))
	})

	It("should list every failing field in order", func() {
		verr = env.NewValidationError(env.ContextClient, []env.FieldError{
			{Variable: "NODE_ENV", Message: "bad mode"},
			{Variable: "NEXT_PUBLIC_APP_URL", Message: "bad url"},
		})

		msg := verr.FormattedMessage()
		Expect(msg).To(HavePrefix("\nClient Environment Validation Failed\n"))
		Expect(strings.Index(msg, "✗ NODE_ENV")).To(BeNumerically("<", strings.Index(msg, "✗ NEXT_PUBLIC_APP_URL")))
		Expect(verr.MissingVariables()).To(Equal([]string{"NODE_ENV", "NEXT_PUBLIC_APP_URL"}))
		Expect(verr.Error()).To(Equal("missing client environment variables: NODE_ENV, NEXT_PUBLIC_APP_URL"))
	})

	It("should be deterministic", func() {
		Expect(verr.FormattedMessage()).To(Equal(verr.FormattedMessage()))
	})

	It("should serialise for programmatic consumers", func() {
		data, err := json.Marshal(verr)
		Expect(err).NotTo(HaveOccurred())
		Expect(data).To(MatchJSON(`{
			"name": "EnvValidationError",
			"context": "Server",
			"message": "missing server environment variables: COOKIE_SECRET",
			"errors": [{"variable": "COOKIE_SECRET", "message": "COOKIE_SECRET is required", "code": "validation_required"}]
		}`))
	})

	It("should copy the failure list", func() {
		issues := []env.FieldError{{Variable: "A", Message: "a"}}
		verr = env.NewValidationError(env.ContextServer, issues)
		issues[0].Variable = "B"
		Expect(verr.MissingVariables()).To(Equal([]string{"A"}))
	})

	It("should refuse an empty failure list", func() {
		Expect(func() { env.NewValidationError(env.ContextServer, nil) }).To(Panic())
	})
})

var _ = Describe("MaskSecret", func() {
	DescribeTable("masking",
		func(secret, want string) {
			Expect(env.MaskSecret(secret)).To(Equal(want))
		},
		Entry("empty", "", "••••••••"),
		Entry("short", "abc", "••••••••"),
		Entry("exactly eight", "abcdefgh", "••••••••"),
		Entry("nine", "abcdefghi", "abcd••••••••fghi"),
		Entry("long", strings.Repeat("x", 28)+"1234", "xxxx••••••••1234"),
	)
})
