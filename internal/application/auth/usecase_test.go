package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/tienda-api/internal/application/auth"
	"github.com/tu-usuario/tienda-api/internal/application/dto"
	"github.com/tu-usuario/tienda-api/internal/domain"
	"github.com/tu-usuario/tienda-api/internal/domain/entity"
	pkgjwt "github.com/tu-usuario/tienda-api/pkg/jwt"
)

var testJWTCfg = auth.JWTConfig{
	Secret:   "test-secret-key-for-unit-tests",
	ExpHours: 4,
	Issuer:   "tienda-api-test",
}

// fakeUserRepo devuelve siempre el mismo usuario (o error) sin tocar la DB.
type fakeUserRepo struct {
	usuario *entity.Usuario
	err     error
}

func (f *fakeUserRepo) FindByCorreo(_ context.Context, _ string) (*entity.Usuario, error) {
	return f.usuario, f.err
}

func usuarioConPassword(t *testing.T, password string) *entity.Usuario {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.Usuario{
		ID:           42,
		Nombre:       "Ana Pérez",
		Correo:       "ana@tienda.cl",
		PasswordHash: string(hash),
		RolID:        2,
		Rol:          entity.RolVendedor,
	}
}

func TestLogin_Exitoso_EmiteTokenVerificable(t *testing.T) {
	uc := auth.NewAuthUseCase(&fakeUserRepo{usuario: usuarioConPassword(t, "secreto123")}, testJWTCfg)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Correo: "ana@tienda.cl", Password: "secreto123"})
	require.NoError(t, err)
	require.NotNil(t, out)

	// El token emitido debe validar con el mismo secret y portar id y rol
	userID, rol, err := pkgjwt.Parse(testJWTCfg.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
	assert.Equal(t, entity.RolVendedor, rol)

	assert.Equal(t, int64(42), out.Usuario.ID)
	assert.Equal(t, "Ana Pérez", out.Usuario.Nombre)
	assert.Equal(t, "ana@tienda.cl", out.Usuario.Correo)
	assert.Equal(t, entity.RolVendedor, out.Usuario.Rol)
}

func TestLogin_CorreoInexistente_RetornaErrUserNotFound(t *testing.T) {
	uc := auth.NewAuthUseCase(&fakeUserRepo{usuario: nil}, testJWTCfg)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Correo: "nadie@tienda.cl", Password: "lo-que-sea"})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_PasswordIncorrecta_RetornaErrUnauthorized(t *testing.T) {
	uc := auth.NewAuthUseCase(&fakeUserRepo{usuario: usuarioConPassword(t, "secreto123")}, testJWTCfg)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Correo: "ana@tienda.cl", Password: "otra-cosa"})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_ErrorDeRepositorio_SePropaga(t *testing.T) {
	dbErr := errors.New("conexión caída")
	uc := auth.NewAuthUseCase(&fakeUserRepo{err: dbErr}, testJWTCfg)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Correo: "ana@tienda.cl", Password: "secreto123"})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, dbErr)
}

func TestLogin_RespuestaNoIncluyeHash(t *testing.T) {
	usuario := usuarioConPassword(t, "secreto123")
	uc := auth.NewAuthUseCase(&fakeUserRepo{usuario: usuario}, testJWTCfg)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Correo: "ana@tienda.cl", Password: "secreto123"})
	require.NoError(t, err)

	// El resumen del usuario expone solo id, nombre, correo y rol
	assert.NotContains(t, out.Token, usuario.PasswordHash)
	assert.Equal(t, dto.UsuarioResponse{
		ID:     usuario.ID,
		Nombre: usuario.Nombre,
		Correo: usuario.Correo,
		Rol:    usuario.Rol,
	}, out.Usuario)
}
