package service

import (
	"github.com/MKhiriev/notes-board/internal/config"
	"github.com/MKhiriev/notes-board/internal/logger"
	"github.com/MKhiriev/notes-board/internal/store"
	"github.com/MKhiriev/notes-board/models"
)

type Services struct {
	AuthService    AuthService
	NoteService    NoteService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.AccountRepository, cfg, logger),
		NoteService:    NewNoteService(storages.NoteRepository, logger),
		AppInfoService: NewAppInfoService(buildInfo, logger),
	}
}
