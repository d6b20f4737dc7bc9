package env

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	ginkgo "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/angeloszaimis/typesafe-env/env/schema"
)

var _ = ginkgo.Describe("parseValues", func() {
	errBroken := errors.New("rule broke")
	s := schema.New(Custom("FLAG", validation.By(func(any) error { return errBroken })))

	ginkgo.It("should wrap errors that are not validation failures", func() {
		values, err := parseValues(ContextServer, s, Map{"FLAG": "on"})
		Expect(values).To(BeNil())
		Expect(err).To(MatchError(errBroken))
		Expect(err.Error()).To(Equal("parse Server environment: field FLAG: rule broke"))

		var verr *ValidationError
		Expect(errors.As(err, &verr)).To(BeFalse())
	})

	ginkgo.It("should turn issues into a ValidationError for the domain", func() {
		_, err := parseValues(ContextClient, s, Map{})

		var verr *ValidationError
		Expect(errors.As(err, &verr)).To(BeTrue())
		Expect(verr.Context).To(Equal(ContextClient))
		Expect(verr.MissingVariables()).To(Equal([]string{"FLAG"}))
	})
})

var _ = ginkgo.Describe("domain", func() {
	ginkgo.It("should keep the first stored value", func() {
		var d domain[int]
		first, second := 1, 2

		got, err := d.get(func() (*int, error) { return &first, nil })
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(BeIdenticalTo(&first))

		got, _ = d.get(func() (*int, error) { return &second, nil })
		Expect(got).To(BeIdenticalTo(&first))

		d.reset()
		got, _ = d.get(func() (*int, error) { return &second, nil })
		Expect(got).To(BeIdenticalTo(&second))
	})
})
