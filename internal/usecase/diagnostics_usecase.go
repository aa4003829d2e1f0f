package usecase

import (
	"context"
	"time"

	"dayflow/config"
	"dayflow/internal/provider"
)

type DiagnosticsUsecase struct {
	factory *provider.Factory
	now     func() time.Time
}

func NewDiagnosticsUsecase(factory *provider.Factory) *DiagnosticsUsecase {
	return &DiagnosticsUsecase{factory: factory, now: time.Now}
}

type Connection struct {
	Status  string `json:"status"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	Count   *int64 `json:"count,omitempty"`
}

type DiagnosticsReport struct {
	Timestamp   string            `json:"timestamp"`
	Environment map[string]string `json:"environment"`
	Connection  *Connection       `json:"connection"`
	Tables      map[string]string `json:"tables"`
	Error       *string           `json:"error"`
}

func configured(v string) string {
	if v == "" {
		return "missing"
	}
	return "configured"
}

// Run checks the provider with the anon key: a head count on users, then one
// per table. Check failures are reported in the result, never returned.
func (u *DiagnosticsUsecase) Run(ctx context.Context, settings config.Provider) (*DiagnosticsReport, error) {
	report := &DiagnosticsReport{
		Timestamp: u.now().UTC().Format(time.RFC3339Nano),
		Environment: map[string]string{
			"url": configured(settings.URL),
			"key": configured(settings.AnonKey),
		},
	}
	if settings.Missing() {
		msg := ErrMissingConfig.Error()
		report.Error = &msg
		return report, ErrMissingConfig
	}

	client, err := u.factory.Client(settings.URL, settings.AnonKey, provider.WithPersistSession(false))
	if err != nil {
		report.Connection = failedConnection(err)
		report.Tables = allTables("error")
		return report, nil
	}

	count, err := client.Count(ctx, "users")
	if err != nil {
		report.Connection = failedConnection(err)
		// no point dialing an unreachable database once per table
		if report.Connection.Code == provider.CodeConnectionFailure {
			report.Tables = allTables("error")
			return report, nil
		}
	} else {
		report.Connection = &Connection{
			Status:  "connected",
			Message: "Successfully queried users table",
			Count:   &count,
		}
	}

	report.Tables = make(map[string]string, len(provider.Tables))
	for _, table := range provider.Tables {
		if _, err := client.Count(ctx, table); err != nil {
			report.Tables[table] = "error"
		} else {
			report.Tables[table] = "exists"
		}
	}
	return report, nil
}

func allTables(status string) map[string]string {
	tables := make(map[string]string, len(provider.Tables))
	for _, table := range provider.Tables {
		tables[table] = status
	}
	return tables
}

func failedConnection(err error) *Connection {
	perr, _ := provider.AsError(provider.Classify(err))
	return &Connection{
		Status:  "error",
		Code:    perr.Code,
		Message: perr.Message,
		Details: perr.Details,
	}
}
