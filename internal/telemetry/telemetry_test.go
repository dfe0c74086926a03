package telemetry

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func TestInitTracerDisabled(t *testing.T) {
	tp, err := InitTracer(context.Background(), Config{Enabled: false})
	require.NoError(t, err)
	assert.Nil(t, tp)
	assert.NoError(t, Shutdown(context.Background(), tp))
}

func TestSamplerClampsRate(t *testing.T) {
	assert.Contains(t, Config{SamplingRate: 7}.sampler().Description(), "AlwaysOnSampler")
	assert.Contains(t, Config{SamplingRate: 0.25}.sampler().Description(), "TraceIDRatioBased{0.25}")
	assert.Contains(t, Config{SamplingRate: -1}.sampler().Description(), "TraceIDRatioBased{0}")
}

func TestExporterOptions(t *testing.T) {
	assert.Len(t, Config{OTLPEndpoint: "localhost:4318"}.exporterOptions(), 2)
	assert.Len(t, Config{OTLPEndpoint: "http://collector:4318"}.exporterOptions(), 2)
	assert.Len(t, Config{OTLPEndpoint: "https://otel.example.com"}.exporterOptions(), 1)
}

func TestInstrumentedClientTimeout(t *testing.T) {
	assert.Equal(t, 30*time.Second, NewInstrumentedHTTPClient(0).Timeout)
	assert.Equal(t, 5*time.Second, NewInstrumentedHTTPClient(5*time.Second).Timeout)
}

func TestInstrumentedClientRecordsSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	defer otel.SetTracerProvider(prev)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	resp, err := NewInstrumentedHTTPClient(time.Second).Get(server.URL)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, trace.SpanKindClient, spans[0].SpanKind())
}

func TestTraceExternalCall(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	defer otel.SetTracerProvider(prev)

	_, span := TraceExternalCall(context.Background(), "cloudinary", "upload")
	RecordExternalCallError(span, errors.New("boom"), 503)
	span.End()

	_, ok := TraceExternalCall(context.Background(), "s3", "put_object")
	RecordExternalCallSuccess(ok, 200, 42)
	ok.End()

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "cloudinary.upload", spans[0].Name())
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "s3.put_object", spans[1].Name())
	assert.Equal(t, codes.Ok, spans[1].Status().Code)
}
