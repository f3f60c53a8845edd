package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grupogen/premios-api/internal/application/auth"
	"github.com/grupogen/premios-api/internal/application/dto"
	"github.com/grupogen/premios-api/internal/domain"
	"github.com/grupogen/premios-api/internal/domain/entity"
	"github.com/grupogen/premios-api/internal/domain/repository/repotest"
	pkgjwt "github.com/grupogen/premios-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func newAuthUC(repo *repotest.Users) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "premios-test"})
}

func seeded() *repotest.Users {
	return repotest.NewUsers(repotest.NewUser("u1", "ana@grupogen.com.ar", "secreta", entity.RoleOperador, time.Now()))
}

func TestLogin_Correcto(t *testing.T) {
	out, err := newAuthUC(seeded()).Login(context.Background(), dto.LoginRequest{
		Email:    "  ANA@GrupoGen.com.ar ",
		Password: "secreta",
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", out.User.ID)
	assert.Equal(t, entity.RoleOperador, out.User.Role)

	id, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err, "el token debe ser válido con el mismo secret")
	assert.Equal(t, "u1", id.UserID)
	assert.Equal(t, "ana@grupogen.com.ar", id.Email)
	assert.Equal(t, entity.RoleOperador, id.Role)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc := newAuthUC(seeded())

	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ana@grupogen.com.ar", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "password incorrecta")

	_, err = uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@grupogen.com.ar", Password: "secreta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "email inexistente da el mismo error")
}

func TestLogin_FallaDelRepositorio(t *testing.T) {
	repo := seeded()
	repo.Err = errors.New("db caída")
	_, err := newAuthUC(repo).Login(context.Background(), dto.LoginRequest{Email: "ana@grupogen.com.ar", Password: "secreta"})
	assert.EqualError(t, err, "db caída")
}

func TestMe(t *testing.T) {
	uc := newAuthUC(seeded())

	out, err := uc.Me(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "ana@grupogen.com.ar", out.Email)

	_, err = uc.Me(context.Background(), "borrado")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
