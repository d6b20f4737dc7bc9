package metrics_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/angeloszaimis/typesafe-env/env"
	"github.com/angeloszaimis/typesafe-env/internal/metrics"
)

var _ = Describe("Collector", func() {
	var (
		collector *metrics.Collector
		ctx       context.Context
		cancel    context.CancelFunc
	)

	BeforeEach(func() {
		log := slog.New(slog.NewTextHandler(io.Discard, nil))
		ctx, cancel = context.WithCancel(context.Background())
		collector = metrics.NewCollector(100, log)
	})

	AfterEach(func() {
		cancel()
	})

	requests := func(route string) func() int64 {
		return func() int64 {
			return collector.Snapshot("envkit").Routes[route].Requests
		}
	}

	It("should process request events", func() {
		collector.Start(ctx)
		collector.Emit(metrics.MetricEvent{Type: metrics.EventRequestReceived, Timestamp: time.Now(), Route: "/api/env"})

		Eventually(requests("/api/env")).Should(Equal(int64(1)))
	})

	It("should process completed responses", func() {
		collector.Start(ctx)
		collector.Emit(metrics.MetricEvent{
			Type:       metrics.EventResponseCompleted,
			Timestamp:  time.Now(),
			Route:      "/api/env",
			Duration:   100 * time.Millisecond,
			StatusCode: 200,
		})

		Eventually(func() int64 {
			return collector.Snapshot("envkit").Routes["/api/env"].StatusCodes[200]
		}).Should(Equal(int64(1)))
		Expect(collector.Snapshot("envkit").Routes["/api/env"].AvgResponse).To(Equal(100 * time.Millisecond))
	})

	It("should drain queued events on cancellation", func() {
		for i := 0; i < 5; i++ {
			collector.Emit(metrics.MetricEvent{Type: metrics.EventRequestReceived, Route: "/healthz"})
		}

		collector.Start(ctx)
		cancel()

		Eventually(requests("/healthz")).Should(Equal(int64(5)))
	})

	It("should drop events instead of blocking when full", func() {
		small := metrics.NewCollector(1, slog.New(slog.NewTextHandler(io.Discard, nil)))
		done := make(chan struct{})
		go func() {
			defer close(done)
			for i := 0; i < 10; i++ {
				small.Emit(metrics.MetricEvent{Type: metrics.EventRequestReceived, Route: "/"})
			}
		}()
		Eventually(done).Should(BeClosed())
	})

	It("should serve snapshots as JSON", func() {
		collector.Start(ctx)
		collector.Emit(metrics.MetricEvent{Type: metrics.EventRequestReceived, Route: "/api/env"})
		Eventually(requests("/api/env")).Should(Equal(int64(1)))

		rec := httptest.NewRecorder()
		collector.Handler("envkit").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Header().Get("Content-Type")).To(Equal("application/json"))

		var snap metrics.Snapshot
		Expect(json.Unmarshal(rec.Body.Bytes(), &snap)).To(Succeed())
		Expect(snap.Service).To(Equal("envkit"))
		Expect(snap.TotalRequests).To(Equal(int64(1)))
	})

	Describe("environment outcomes", func() {
		outcomes := func(domain string) func() map[string]int64 {
			return func() map[string]int64 {
				return collector.Snapshot("envkit").Env[domain]
			}
		}

		validSource := func() env.Map {
			return env.Map{
				"NODE_ENV":            "test",
				"COOKIE_SECRET":       strings.Repeat("s", 32),
				"NEXT_PUBLIC_APP_URL": "http://localhost:3000",
			}
		}

		BeforeEach(func() {
			collector.Start(ctx)
		})

		It("should count each parse but not cached reads", func() {
			e := env.New(validSource(), env.WithTarget(env.TargetServer), env.WithObserver(collector.ObserveEnv))
			for i := 0; i < 3; i++ {
				Expect(e.Validate()).To(Succeed())
			}

			Eventually(outcomes("Server")).Should(Equal(map[string]int64{metrics.OutcomeValid: 1}))
			Eventually(outcomes("Client")).Should(Equal(map[string]int64{metrics.OutcomeValid: 1}))
		})

		It("should count validation failures on every attempt", func() {
			src := validSource()
			delete(src, "COOKIE_SECRET")
			e := env.New(src, env.WithTarget(env.TargetServer), env.WithObserver(collector.ObserveEnv))

			Expect(e.ValidateServer()).NotTo(Succeed())
			Expect(e.ValidateServer()).NotTo(Succeed())

			Eventually(outcomes("Server")).Should(Equal(map[string]int64{metrics.OutcomeInvalid: 2}))
		})

		It("should count refused server reads on a browser target", func() {
			e := env.New(validSource(), env.WithTarget(env.TargetBrowser), env.WithObserver(collector.ObserveEnv))

			_, err := e.Server().CookieSecret()
			Expect(err).To(HaveOccurred())
			_, err = e.ServerEnv()
			Expect(err).To(MatchError(env.ErrServerOnClient))

			Eventually(outcomes("Server")).Should(Equal(map[string]int64{metrics.OutcomeRefused: 2}))
		})

		It("should classify other failures as errors", func() {
			collector.ObserveEnv(env.ContextClient, errors.New("lookup failed"))
			Eventually(outcomes("Client")).Should(Equal(map[string]int64{metrics.OutcomeError: 1}))
		})
	})
})
