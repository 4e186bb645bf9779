package tui

import "github.com/MKhiriev/go-pass-sync/models"

type domainRow struct {
	domain string
	cfg    models.DomainConfig
	active bool
}

type domainsLoadedMsg struct {
	rows   []domainRow
	server models.ServerConfig
	err    error
}

type syncDoneMsg struct {
	result models.SyncResult
}

type domainSavedMsg struct {
	domain string
	cfg    models.DomainConfig
	err    error
}

type historyLoadedMsg struct {
	domain   string
	versions []models.VersionInfo
	err      error
}

type copiedMsg struct {
	url string
	err error
}

type clearStatusMsg struct{}
