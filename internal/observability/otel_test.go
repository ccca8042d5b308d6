package observability

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"

	"github.com/vetware/go-clinic-backend/internal/config"
)

func TestSetupOTel_DisabledIsNoop(t *testing.T) {
	cfg := config.Config{OTEL: config.OTELConfig{Enabled: false}}

	shutdown, err := SetupOTel(context.Background(), cfg, "test")
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("noop shutdown: %v", err)
	}
}

func TestSetupOTel_ExporterFailurePropagates(t *testing.T) {
	orig := newOTLPExporterFn
	defer func() { newOTLPExporterFn = orig }()

	boom := errors.New("collector unreachable")
	newOTLPExporterFn = func(ctx context.Context, client otlptrace.Client) (*otlptrace.Exporter, error) {
		return nil, boom
	}

	cfg := config.Config{OTEL: config.OTELConfig{
		Enabled:     true,
		Endpoint:    "localhost:4317",
		Insecure:    true,
		ServiceName: "clinic-test",
		SampleRatio: 1,
	}}
	if _, err := SetupOTel(context.Background(), cfg, "test"); !errors.Is(err, boom) {
		t.Fatalf("expected exporter error, got %v", err)
	}
}

func TestClinicResource_CarriesStrategyAttributes(t *testing.T) {
	cfg := config.Config{
		DBStrategy: config.StrategySQL,
		DBDriver:   config.DriverPostgres,
		OTEL:       config.OTELConfig{ServiceName: "clinic-test"},
	}

	res, err := clinicResource(context.Background(), cfg, "1.2.3")
	if err != nil {
		t.Fatalf("resource: %v", err)
	}

	attrs := map[string]string{}
	for _, kv := range res.Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	if attrs["service.name"] != "clinic-test" || attrs["service.version"] != "1.2.3" {
		t.Fatalf("service identity: %v", attrs)
	}
	if attrs["clinic.db.strategy"] != "sql" || attrs["clinic.db.driver"] != "postgres" {
		t.Fatalf("strategy attributes: %v", attrs)
	}
}
