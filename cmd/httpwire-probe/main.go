// Command httpwire-probe feeds a file (or stdin) into the incremental
// HTTP decoder a small chunk at a time and reports what it decoded. It
// exists to exercise the incremental decoder and the telemetry package
// against real input, not as a production tool.
package main

import (
	"flag"
	"io"
	"os"

	"github.com/pkg/errors"

	httpwire "github.com/quanxiaoxiao/http-parser/pkg/http"
	"github.com/quanxiaoxiao/http-parser/telemetry"
)

const probeChunkSize = 64

func main() {
	var (
		path       = flag.String("in", "", "path to a file containing one HTTP request or response (default: stdin)")
		isResponse = flag.Bool("response", false, "parse input as a response instead of a request")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := "info"
	if *verbose {
		level = "debug"
	}
	log := telemetry.NewLogger(level)
	metrics := telemetry.NewNoopMetrics()

	if err := run(*path, *isResponse, log, metrics); err != nil {
		log.Error("probe failed", telemetry.Err(err))
		os.Exit(1)
	}
}

func run(path string, isResponse bool, log telemetry.Logger, metrics telemetry.Metrics) error {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return errors.Wrap(err, "open input")
		}
		defer f.Close()
		r = f
	}

	correlationID := telemetry.NewCorrelationID()
	log = log.With(telemetry.String("correlation_id", correlationID))

	kind := "request"
	if isResponse {
		kind = "response"
	}

	buf := make([]byte, probeChunkSize)
	if isResponse {
		rd := httpwire.NewResponseDecoder(httpwire.DefaultLimits(), false)
		return pump(r, buf, rd.Decode, func() bool {
			return rd.Phase() == httpwire.PhaseFinished || rd.Phase() == httpwire.PhaseError
		}, func() error {
			if rd.Phase() == httpwire.PhaseError {
				metrics.DecodeErrors(kind)
				return errors.Wrap(rd.Err(), "decode response")
			}
			resp := rd.Response()
			metrics.MessagesDecoded(kind)
			metrics.BodyBytesDecoded(kind, int64(len(resp.Body)))
			log.Info("decoded response",
				telemetry.String("version", resp.Version),
				telemetry.Int("status", resp.StatusCode),
				telemetry.String("reason", resp.Reason),
				telemetry.Int("header_count", len(resp.Headers)),
				telemetry.Int("body_bytes", len(resp.Body)),
			)
			return nil
		})
	}

	rd := httpwire.NewRequestDecoder(httpwire.DefaultLimits())
	return pump(r, buf, rd.Decode, func() bool {
		return rd.Phase() == httpwire.PhaseFinished || rd.Phase() == httpwire.PhaseError
	}, func() error {
		if rd.Phase() == httpwire.PhaseError {
			metrics.DecodeErrors(kind)
			return errors.Wrap(rd.Err(), "decode request")
		}
		req := rd.Request()
		metrics.MessagesDecoded(kind)
		metrics.BodyBytesDecoded(kind, int64(len(req.Body)))
		log.Info("decoded request",
			telemetry.String("method", req.Method),
			telemetry.String("path", req.Path),
			telemetry.String("version", req.Version),
			telemetry.Int("header_count", len(req.Headers)),
			telemetry.Int("body_bytes", len(req.Body)),
		)
		return nil
	})
}

// pump feeds r into decode one small chunk at a time until done reports
// true, then calls report to surface the outcome.
func pump(r io.Reader, buf []byte, decode func([]byte) error, done func() bool, report func() error) error {
	for !done() {
		n, err := r.Read(buf)
		if n > 0 {
			if decErr := decode(buf[:n]); decErr != nil {
				return report()
			}
		}
		if done() {
			break
		}
		if err != nil {
			if err == io.EOF {
				return errors.New("input ended before message completed")
			}
			return errors.Wrap(err, "read input")
		}
	}
	return report()
}
