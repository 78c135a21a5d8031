package services

import (
	"chat-render/domain"
	"chat-render/render"
	"chat-render/repositories"
	"time"

	"github.com/google/uuid"
)

type IRenderService interface {
	PostChat(sender domain.Sender, message string, viewers []uuid.UUID) (domain.RenderResult, bool, error)
	Mute(id uuid.UUID, d time.Duration, by, reason string) error
	Unmute(id uuid.UUID) error
	Ignore(viewer, sender uuid.UUID) error
	Unignore(viewer, sender uuid.UUID) error
	SetCustomColor(id uuid.UUID, spec string) error
	SetColorTag(id uuid.UUID, tag string) error
}

// RenderService is the host-facing facade over the rendering pipeline and
// the moderation stores.
type RenderService struct {
	pipeline *render.Pipeline
	mutes    repositories.MuteStore
	ignores  repositories.IgnoreStore
	colors   *repositories.ColorStore
}

func NewRenderService(
	pipeline *render.Pipeline,
	mutes repositories.MuteStore,
	ignores repositories.IgnoreStore,
	colors *repositories.ColorStore,
) *RenderService {
	return &RenderService{pipeline: pipeline, mutes: mutes, ignores: ignores, colors: colors}
}

func (s *RenderService) PostChat(sender domain.Sender, message string, viewers []uuid.UUID) (domain.RenderResult, bool, error) {
	return s.pipeline.Render(sender, message, viewers)
}

func (s *RenderService) Mute(id uuid.UUID, d time.Duration, by, reason string) error {
	return s.mutes.Mute(id, d, by, reason)
}

func (s *RenderService) Unmute(id uuid.UUID) error {
	return s.mutes.Unmute(id)
}

func (s *RenderService) Ignore(viewer, sender uuid.UUID) error {
	return s.ignores.Ignore(viewer, sender)
}

func (s *RenderService) Unignore(viewer, sender uuid.UUID) error {
	return s.ignores.Unignore(viewer, sender)
}

func (s *RenderService) SetCustomColor(id uuid.UUID, spec string) error {
	return s.colors.SetCustom(id, spec)
}

func (s *RenderService) SetColorTag(id uuid.UUID, tag string) error {
	return s.colors.SetTag(id, tag)
}
