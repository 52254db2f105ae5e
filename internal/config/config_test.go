package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"

	"github.com/princejain-2004/RESUME-EXPERT/internal/config"
)

var configEnvVars = []string{
	"RESUME_CONFIG",
	"RESUME_ADDR",
	"RESUME_DATABASE_URL",
	"RESUME_UPLOAD_DIR",
	"RESUME_MAX_UPLOAD_MB",
	"RESUME_METRICS_ENABLED",
	"RESUME_RATE_LIMIT_PER_MINUTE",
	"RESUME_RATE_LIMIT_WHITELIST",
	"RESUME_EXPORT_TIMEOUT_SECONDS",
	"DATABASE_URL",
}

func clearConfigEnvVars() {
	for _, key := range configEnvVars {
		_ = os.Unsetenv(key)
	}
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()
		clearConfigEnvVars()
		defer clearConfigEnvVars()

		convey.Convey("When loading config with defaults only", func() {
			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.UploadDir, convey.ShouldEqual, "uploads")
				convey.So(cfg.MaxUploadMB, convey.ShouldEqual, 5)
				convey.So(cfg.MaxUploadBytes(), convey.ShouldEqual, int64(5<<20))
				convey.So(cfg.ExportTimeout(), convey.ShouldEqual, 30*time.Second)
				convey.So(cfg.MetricsEnabled, convey.ShouldBeTrue)
				convey.So(cfg.RateLimitPerMinute, convey.ShouldEqual, 300)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("RESUME_ADDR", ":9090")
			_ = os.Setenv("RESUME_UPLOAD_DIR", "/var/lib/resumes")
			_ = os.Setenv("RESUME_MAX_UPLOAD_MB", "12")
			_ = os.Setenv("RESUME_METRICS_ENABLED", "false")
			_ = os.Setenv("RESUME_RATE_LIMIT_WHITELIST", "10.0.0.1, 10.0.0.2,")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.UploadDir, convey.ShouldEqual, "/var/lib/resumes")
				convey.So(cfg.MaxUploadMB, convey.ShouldEqual, 12)
				convey.So(cfg.MetricsEnabled, convey.ShouldBeFalse)
				convey.So(cfg.Whitelist(), convey.ShouldResemble, map[string]bool{"10.0.0.1": true, "10.0.0.2": true})
			})
		})

		convey.Convey("When only DATABASE_URL is set", func() {
			_ = os.Setenv("DATABASE_URL", "postgres://localhost/db")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it is used as the database URL", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.DatabaseURL, convey.ShouldEqual, "postgres://localhost/db")
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			path := filepath.Join(t.TempDir(), "config.yaml")
			yaml := "addr: \":7070\"\nupload_dir: files\nexport_timeout_seconds: 45\n"
			convey.So(os.WriteFile(path, []byte(yaml), 0o600), convey.ShouldBeNil)
			_ = os.Setenv("RESUME_CONFIG", path)
			_ = os.Setenv("RESUME_UPLOAD_DIR", "from-env")

			cfg, err := config.Load(ctx)

			convey.Convey("Then file values apply and env vars win over them", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.ExportTimeoutSeconds, convey.ShouldEqual, 45)
				convey.So(cfg.UploadDir, convey.ShouldEqual, "from-env")
			})
		})

		convey.Convey("When the config file is missing", func() {
			_ = os.Setenv("RESUME_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

			_, err := config.Load(ctx)

			convey.Convey("Then loading fails", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When a value is out of range", func() {
			_ = os.Setenv("RESUME_MAX_UPLOAD_MB", "0")

			_, err := config.Load(ctx)

			convey.Convey("Then validation rejects it", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "max_upload_mb")
			})
		})
	})
}
