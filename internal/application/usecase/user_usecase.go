package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/grupogen/premios-api/internal/application/auth"
	"github.com/grupogen/premios-api/internal/application/dto"
	"github.com/grupogen/premios-api/internal/domain"
	"github.com/grupogen/premios-api/internal/domain/entity"
	"github.com/grupogen/premios-api/internal/domain/repository"
	"github.com/grupogen/premios-api/pkg/logger"
	"github.com/grupogen/premios-api/pkg/mailer"
)

// minPasswordLen largo mínimo de una contraseña nueva.
const minPasswordLen = 4

// MailSender lo implementa *mailer.SMTPMailer.
type MailSender interface {
	Send(msg mailer.Message) error
}

// WelcomeConfig datos que se incluyen en el email de bienvenida.
type WelcomeConfig struct {
	AppName string
	AppURL  string
}

// UserUseCase administración de usuarios: alta (ADMIN), listado (ADMIN) y cambio de contraseña propia.
type UserUseCase struct {
	repo    repository.UserRepository
	mail    MailSender // nil = SMTP no configurado
	welcome WelcomeConfig
	log     *logger.Logger
	now     func() time.Time
}

// NewUserUseCase construye el caso de uso. mail puede ser nil.
func NewUserUseCase(repo repository.UserRepository, mail MailSender, welcome WelcomeConfig, log *logger.Logger) *UserUseCase {
	return &UserUseCase{repo: repo, mail: mail, welcome: welcome, log: log, now: time.Now}
}

// Create da de alta un usuario. Un rol desconocido se degrada a VIEWER.
// El email de bienvenida es best-effort: si falla, el alta igual se confirma.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	email := auth.NormalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: email y contraseña son obligatorios", domain.ErrInvalidInput)
	}
	role := strings.ToUpper(strings.TrimSpace(in.Role))
	if !entity.ValidRole(role) {
		role = entity.RoleViewer
	}

	existing, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("usecase.CreateUser: hash: %w", err)
	}
	now := uc.now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	uc.sendWelcome(user, in.Password)

	out := auth.ToUserResponse(user)
	return &out, nil
}

// List devuelve los usuarios, más nuevos primero.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, auth.ToUserResponse(u))
	}
	return out, nil
}

// ChangePassword cambia la contraseña del usuario logueado verificando la actual.
func (uc *UserUseCase) ChangePassword(ctx context.Context, userID string, in dto.ChangePasswordRequest) error {
	if in.CurrentPassword == "" || in.NewPassword == "" {
		return fmt.Errorf("%w: contraseña actual y nueva son obligatorias", domain.ErrInvalidInput)
	}
	if len(in.NewPassword) < minPasswordLen {
		return fmt.Errorf("%w: la nueva contraseña es demasiado corta", domain.ErrInvalidInput)
	}
	user, err := uc.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrWrongPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("usecase.ChangePassword: hash: %w", err)
	}
	return uc.repo.UpdatePassword(ctx, user.ID, string(hash))
}

func (uc *UserUseCase) sendWelcome(user *entity.User, password string) {
	if uc.mail == nil {
		uc.log.Warn().Str("to", user.Email).Msg("SMTP no configurado, se omite el email de alta")
		return
	}
	msg := mailer.Message{
		To:      user.Email,
		Subject: uc.welcome.AppName + " - Tu usuario fue creado",
		Body:    welcomeBody(uc.welcome, user, password),
	}
	if err := uc.mail.Send(msg); err != nil {
		uc.log.Error().Err(err).Str("to", user.Email).Msg("email de alta")
	}
}

func welcomeBody(cfg WelcomeConfig, user *entity.User, password string) string {
	var b strings.Builder
	b.WriteString("Hola,\n\n")
	fmt.Fprintf(&b, "Te crearon un usuario para %s.\n\n", cfg.AppName)
	fmt.Fprintf(&b, "Usuario: %s\nContraseña: %s\nRol: %s\n\n", user.Email, password, user.Role)
	fmt.Fprintf(&b, "Podés ingresar en:\n%s\n\n", cfg.AppURL)
	b.WriteString("Te recomendamos cambiar la contraseña después del primer inicio de sesión.\n\n")
	fmt.Fprintf(&b, "Saludos,\nEquipo %s", cfg.AppName)
	return b.String()
}
