package service

import (
	"context"
	"fmt"

	"github.com/ridloal/dyfn-shop/internal/platform/config"
	"github.com/ridloal/dyfn-shop/internal/platform/docstore"
	"github.com/ridloal/dyfn-shop/internal/system/domain"
)

type DiagnosticsService interface {
	// Check probes the store. It never fails; problems are described in
	// the report.
	Check(ctx context.Context) domain.Report
}

type diagnosticsServiceImpl struct {
	store   docstore.Store
	urlSet  bool
	nameSet bool
}

// NewDiagnosticsService reports on store, which may be nil, and on whether
// cfg carries a connection string and database name.
func NewDiagnosticsService(store docstore.Store, cfg config.StoreConfig) DiagnosticsService {
	return &diagnosticsServiceImpl{
		store:   store,
		urlSet:  cfg.URL != "",
		nameSet: cfg.Name != "",
	}
}

func (s *diagnosticsServiceImpl) Check(ctx context.Context) (report domain.Report) {
	report = domain.Report{
		Backend:          domain.BackendRunning,
		Database:         domain.DatabaseNotAvailable,
		ConnectionStatus: domain.StatusNotConnected,
		Collections:      []string{},
	}
	defer func() {
		if r := recover(); r != nil {
			report.Database = domain.DatabaseFailurePrefix + truncate(fmt.Sprint(r), domain.MaxErrorLength)
		}
		report.DatabaseURL = setting(s.urlSet)
		report.DatabaseName = setting(s.nameSet)
	}()

	if s.store == nil {
		report.Database = domain.DatabaseNotInitialized
		return report
	}

	report.Database = domain.DatabaseAvailable
	report.ConnectionStatus = domain.StatusConnected

	names, err := s.store.ListCollectionNames(ctx, domain.MaxCollections)
	if err != nil {
		report.Database = domain.DatabaseErrorPrefix + truncate(err.Error(), domain.MaxErrorLength)
		return report
	}
	if len(names) > domain.MaxCollections {
		names = names[:domain.MaxCollections]
	}
	if names != nil {
		report.Collections = names
	}
	report.Database = domain.DatabaseWorking
	return report
}

func setting(ok bool) string {
	if ok {
		return domain.SettingSet
	}
	return domain.SettingNotSet
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
