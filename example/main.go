// Package main demonstrates usage of the httperror package.
package main

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/next-trace/scg-httperror/httperror"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	log := logger.Sugar()

	// Status only
	notFound := httperror.Must(httperror.Status(http.StatusNotFound))
	log.Infow("status only", "error", notFound)

	// Status and message, positional args win over options
	e, err := httperror.New(
		httperror.Status(http.StatusBadRequest),
		httperror.Message("payload invalid"),
		httperror.Options{Message: httperror.Ptr("ignored"), Expose: httperror.Ptr(true)},
	)
	if err != nil {
		log.Fatalw("construct", "err", err)
	}
	log.Infow("status and message", zap.Object("error", e))

	// Message with status from options
	e, err = httperror.FromMessage("customer 42 not found", httperror.Options{Status: httperror.Ptr(http.StatusNotFound)})
	if err != nil {
		log.Fatalw("construct", "err", err)
	}
	log.Infow("message and options", "text", e.Error(), "expose", e.Expose())

	// Wrap a storage failure, hiding the detail from clients
	cause := errors.New("connection refused")
	e, err = httperror.Wrap(cause, httperror.Status(http.StatusServiceUnavailable), httperror.Message("db unreachable"))
	if err != nil {
		log.Fatalw("wrap", "err", err)
	}
	log.Warnw("wrapped", zap.Object("error", e), "is", errors.Is(e, cause))

	// Invalid status never produces a value
	if _, err := httperror.FromStatus(http.StatusFound); errors.Is(err, httperror.ErrInvalidStatus) {
		log.Errorw("rejected", "status", http.StatusFound, "err", err)
	}

	// Foreign errors are adapted
	log.Infow("ensured", zap.Object("error", httperror.Ensure(errors.New("boom"))))
}
