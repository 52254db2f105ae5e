package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	. "github.com/smartystreets/goconvey/convey"
)

func value(c prometheus.Counter) float64 {
	var pb dto.Metric
	if err := c.Write(&pb); err != nil {
		return -1
	}
	return pb.GetCounter().GetValue()
}

func sampleCount(h prometheus.Histogram) uint64 {
	var pb dto.Metric
	if err := h.Write(&pb); err != nil {
		return 0
	}
	return pb.GetHistogram().GetSampleCount()
}

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options", func() {
			manager := NewManager()

			Convey("Then it is enabled and owns a registry", func() {
				So(manager.Enabled(), ShouldBeTrue)
				So(manager.Registry(), ShouldNotBeNil)
			})
		})

		Convey("When creating two managers with default options", func() {
			Convey("Then their registrations do not collide", func() {
				So(func() { NewManager(); NewManager() }, ShouldNotPanic)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test"),
				WithSubsystem("resumes"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithPrometheusRegistry(registry),
			)
			manager.RecordResumeDeleted()

			Convey("Then metric names use the namespace and subsystem", func() {
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				names := make([]string, 0, len(families))
				for _, f := range families {
					names = append(names, f.GetName())
				}
				So(names, ShouldContain, "test_resumes_resumes_deleted_total")
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given an enabled manager", t, func() {
		m := NewManager()

		Convey("When recording resume activity", func() {
			m.RecordResumeSaved(80)
			m.ObserveCompletion(40)
			m.RecordValidationFailure("contact")
			m.RecordValidationFailure("contact")

			Convey("Then the counters and histogram reflect it", func() {
				So(value(m.resumesSaved), ShouldEqual, 1)
				So(sampleCount(m.completionScore), ShouldEqual, 2)
				So(value(m.validationFailed.WithLabelValues("contact")), ShouldEqual, 2)
			})
		})

		Convey("When recording wizard transitions", func() {
			m.RecordTransition("advance", "profile", "refused")
			m.RecordTransition("advance", "profile", "moved")
			m.RecordTransition("retreat", "profile", "exit_wizard")

			Convey("Then each label set is counted separately", func() {
				So(value(m.wizardTransitions.WithLabelValues("advance", "profile", "refused")), ShouldEqual, 1)
				So(value(m.wizardTransitions.WithLabelValues("retreat", "profile", "exit_wizard")), ShouldEqual, 1)
			})
		})

		Convey("When recording exports", func() {
			m.RecordExport(2*time.Second, nil)
			m.RecordExport(0, errors.New("chrome missing"))

			Convey("Then failures are counted apart from durations", func() {
				So(value(m.exportErrors), ShouldEqual, 1)
			})
		})

		Convey("When recording HTTP traffic", func() {
			m.RecordHTTPRequest("GET /resumes", http.MethodGet, http.StatusOK, 15*time.Millisecond)
			m.RecordRateLimited(http.MethodPost)
			m.RecordUpload("thumbnail", "stored")

			Convey("Then the handler exposes them", func() {
				rec := httptest.NewRecorder()
				m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(rec.Body.String(), ShouldContainSubstring, `resume_builder_http_requests_total{method="GET",route="GET /resumes",status_code="200"} 1`)
				So(rec.Body.String(), ShouldContainSubstring, "resume_builder_rate_limited_requests_total")
				So(rec.Body.String(), ShouldContainSubstring, "resume_builder_image_uploads_total")
			})
		})
	})
}

func TestDisabledManager(t *testing.T) {
	Convey("Given a disabled manager and a nil manager", t, func() {
		disabled := NewManager(WithMetricsEnabled(false))
		var missing *Manager

		Convey("Then recording is a no-op", func() {
			So(func() {
				disabled.RecordResumeSaved(10)
				missing.RecordResumeSaved(10)
				missing.RecordTransition("advance", "profile", "moved")
				missing.RecordHTTPRequest("GET /health", "GET", 200, time.Millisecond)
				missing.RecordExport(time.Second, nil)
			}, ShouldNotPanic)
			So(value(disabled.resumesSaved), ShouldEqual, 0)
			So(missing.Enabled(), ShouldBeFalse)
		})
	})
}
