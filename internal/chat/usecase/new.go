package usecase

import (
	"time"

	"rev-chat-relay/internal/chat"
	"rev-chat-relay/pkg/gemini"
	"rev-chat-relay/pkg/log"
)

// Config holds the process-wide settings shared by every session.
type Config struct {
	SystemInstruction string
	Timeout           time.Duration
}

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	l                 log.Logger
	llm               gemini.IGemini
	systemInstruction string
	timeout           time.Duration
}

var _ chat.UseCase = (*implUseCase)(nil)

// New creates a new chat UseCase implementation.
func New(l log.Logger, llm gemini.IGemini, cfg Config) *implUseCase {
	if cfg.SystemInstruction == "" {
		cfg.SystemInstruction = chat.DefaultSystemInstruction
	}
	return &implUseCase{
		l:                 l,
		llm:               llm,
		systemInstruction: cfg.SystemInstruction,
		timeout:           cfg.Timeout,
	}
}

func (uc *implUseCase) Configured() bool {
	return uc.llm.Configured()
}

func (uc *implUseCase) Model() string {
	return uc.llm.Model()
}
