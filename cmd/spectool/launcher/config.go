package launcher

import (
	"fmt"

	"github.com/evalphobia/logrus_sentry"
	"github.com/sirupsen/logrus"
	cli "gopkg.in/urfave/cli.v1"
)

// setupLogging configures the process logger from the common flags. When a
// Sentry DSN is given, errors are additionally reported there.
func setupLogging(ctx *cli.Context) error {
	switch ctx.GlobalString("log.format") {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		logrus.SetFormatter(&logrus.TextFormatter{
			ForceColors:   ctx.GlobalBool("log.color"),
			FullTimestamp: true,
		})
	default:
		return fmt.Errorf("unknown log format %q", ctx.GlobalString("log.format"))
	}

	logrus.SetLevel(verbosityLevel(ctx.GlobalInt("log.verbosity")))

	if dsn := ctx.GlobalString("sentry.dsn"); dsn != "" {
		hook, err := logrus_sentry.NewSentryHook(dsn, []logrus.Level{
			logrus.PanicLevel,
			logrus.FatalLevel,
			logrus.ErrorLevel,
		})
		if err != nil {
			return fmt.Errorf("sentry hook setup: %v", err)
		}
		logrus.AddHook(hook)
	}
	return nil
}

func verbosityLevel(verbosity int) logrus.Level {
	switch {
	case verbosity <= 0:
		return logrus.FatalLevel
	case verbosity == 1:
		return logrus.ErrorLevel
	case verbosity == 2:
		return logrus.WarnLevel
	case verbosity == 3:
		return logrus.InfoLevel
	case verbosity == 4:
		return logrus.DebugLevel
	default:
		return logrus.TraceLevel
	}
}
