package env_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/angeloszaimis/typesafe-env/env"
)

var _ = Describe("ServerAccessor", func() {
	Context("on a server target", func() {
		var server env.ServerAccessor

		BeforeEach(func() {
			server = env.New(validSource(), env.WithTarget(env.TargetServer)).Server()
		})

		It("should read every field", func() {
			mode, err := server.NodeEnv()
			Expect(err).NotTo(HaveOccurred())
			Expect(mode).To(Equal(env.Development))

			port, ok, err := server.Port()
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())
			Expect(port).To(Equal(8080))

			secret, err := server.CookieSecret()
			Expect(err).NotTo(HaveOccurred())
			Expect(secret).To(Equal(validSecret))

			Expect(server.IsDev()).To(BeTrue())
			Expect(server.IsProd()).To(BeFalse())
			Expect(server.IsTest()).To(BeFalse())
		})

		It("should read fields by name", func() {
			Expect(server.Get("COOKIE_SECRET")).To(Equal(validSecret))
			Expect(server.Get("PORT")).To(Equal(8080))
			Expect(server.Get("isDev")).To(Equal(true))
		})

		It("should reject unknown names", func() {
			_, err := server.Get("DATABASE_URL")
			Expect(err).To(MatchError(env.ErrUnknownField))
		})

		It("should surface validation errors", func() {
			server = env.New(env.Map{}, env.WithTarget(env.TargetServer)).Server()
			_, err := server.CookieSecret()

			var verr *env.ValidationError
			Expect(errors.As(err, &verr)).To(BeTrue())
		})
	})

	Context("on a browser target", func() {
		var (
			counting *countingSource
			server   env.ServerAccessor
		)

		BeforeEach(func() {
			counting = newCountingSource(validSource())
			server = env.New(counting, env.WithTarget(env.TargetBrowser)).Server()
		})

		expectViolation := func(err error, field string) {
			var violation *env.AccessViolationError
			Expect(errors.As(err, &violation)).To(BeTrue())
			Expect(violation.Field).To(Equal(field))
			Expect(err.Error()).To(ContainSubstring(field))
			Expect(err.Error()).To(ContainSubstring("must never be exposed to the browser"))

			var verr *env.ValidationError
			Expect(errors.As(err, &verr)).To(BeFalse())
		}

		It("should fail every typed getter before parsing", func() {
			_, err := server.NodeEnv()
			expectViolation(err, "NODE_ENV")
			_, _, err = server.Port()
			expectViolation(err, "PORT")
			_, err = server.CookieSecret()
			expectViolation(err, "COOKIE_SECRET")
			_, err = server.IsDev()
			expectViolation(err, "isDev")
			_, err = server.IsProd()
			expectViolation(err, "isProd")
			_, err = server.IsTest()
			expectViolation(err, "isTest")

			Expect(counting.total()).To(BeZero())
		})

		It("should fail every name read on every call", func() {
			for _, field := range []string{"NODE_ENV", "PORT", "COOKIE_SECRET", "isDev", "anything"} {
				for i := 0; i < 2; i++ {
					_, err := server.Get(field)
					expectViolation(err, field)
				}
			}
			Expect(counting.total()).To(BeZero())
		})
	})
})

var _ = Describe("ClientAccessor", func() {
	It("should read fields on any target", func() {
		for _, target := range []env.Target{env.TargetServer, env.TargetBrowser} {
			client := env.New(validSource(), env.WithTarget(target)).Client()

			url, err := client.AppURL()
			Expect(err).NotTo(HaveOccurred())
			Expect(url).To(Equal("http://localhost:3000"))

			mode, err := client.NodeEnv()
			Expect(err).NotTo(HaveOccurred())
			Expect(mode).To(Equal(env.Development))

			Expect(client.IsDev()).To(BeTrue())
			Expect(client.IsProd()).To(BeFalse())
			Expect(client.IsTest()).To(BeFalse())
			Expect(client.Get("NEXT_PUBLIC_APP_URL")).To(Equal("http://localhost:3000"))
		}
	})

	It("should not expose server variables by name", func() {
		client := env.New(validSource()).Client()
		_, err := client.Get("COOKIE_SECRET")
		Expect(err).To(MatchError(env.ErrUnknownField))
	})
})
