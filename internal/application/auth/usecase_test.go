package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/waleed-alfaifi/invoices-api/internal/application/auth"
	"github.com/waleed-alfaifi/invoices-api/internal/application/dto"
	"github.com/waleed-alfaifi/invoices-api/internal/domain"
	"github.com/waleed-alfaifi/invoices-api/internal/domain/entity"
	"github.com/waleed-alfaifi/invoices-api/internal/domain/repository"
	pkgjwt "github.com/waleed-alfaifi/invoices-api/pkg/jwt"
)

type fakeUserRepo struct {
	byUsername map[string]*entity.User
	byID       map[string]*entity.User
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byUsername: make(map[string]*entity.User),
		byID:       make(map[string]*entity.User),
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if _, ok := f.byUsername[user.Username]; ok {
		return domain.ErrUsernameTaken
	}
	f.byUsername[user.Username] = user
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return f.byUsername[username], nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return f.byID[id], nil
}

func testUseCase() (*auth.UseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 43200,
		Issuer:     "invoices-api-test",
	})
	return uc, repo
}

func TestRegister_EmiteTokenYUsuario(t *testing.T) {
	uc, _ := testUseCase()

	session, err := uc.Register(context.Background(), dto.RegisterRequest{
		Username: "waleed", Password: "contraseña-larga",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, session.User.ID)
	assert.Equal(t, "waleed", session.User.Username)
	require.NotEmpty(t, session.Token)

	// El token codifica exactamente el par {id, username}.
	userID, username, err := pkgjwt.Parse("test-secret", session.Token)
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, userID)
	assert.Equal(t, "waleed", username)
}

// Registrar dos veces el mismo username: conflicto y ningún segundo registro.
func TestRegister_UsernameDuplicado(t *testing.T) {
	uc, repo := testUseCase()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Username: "waleed", Password: "contraseña-larga"})
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), dto.RegisterRequest{Username: "waleed", Password: "otra-contraseña"})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	assert.Len(t, repo.byID, 1, "no debe crearse un segundo registro")
}

func TestRegister_NoGuardaPasswordEnClaro(t *testing.T) {
	uc, repo := testUseCase()

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Username: "waleed", Password: "contraseña-larga"})
	require.NoError(t, err)

	stored := repo.byUsername["waleed"]
	assert.NotEqual(t, "contraseña-larga", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("contraseña-larga")))
}

func TestLogin_CredencialesCorrectas(t *testing.T) {
	uc, _ := testUseCase()
	_, err := uc.Register(context.Background(), dto.RegisterRequest{Username: "waleed", Password: "contraseña-larga"})
	require.NoError(t, err)

	session, err := uc.Login(context.Background(), dto.LoginRequest{Username: "waleed", Password: "contraseña-larga"})
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "waleed", session.User.Username)
}

// Usuario inexistente y contraseña incorrecta devuelven el mismo error:
// la respuesta no revela qué usuarios existen.
func TestLogin_CredencialesIncorrectas(t *testing.T) {
	uc, _ := testUseCase()
	_, err := uc.Register(context.Background(), dto.RegisterRequest{Username: "waleed", Password: "contraseña-larga"})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Username: "waleed", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Username: "nadie", Password: "da igual"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestMe(t *testing.T) {
	uc, _ := testUseCase()
	session, err := uc.Register(context.Background(), dto.RegisterRequest{Username: "waleed", Password: "contraseña-larga"})
	require.NoError(t, err)

	user, err := uc.Me(context.Background(), session.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "waleed", user.Username)

	_, err = uc.Me(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
