package application

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/quillsign/quillsign/internal/api/middleware"
	"github.com/quillsign/quillsign/internal/domain/user"
	"github.com/quillsign/quillsign/internal/repository"
	"github.com/quillsign/quillsign/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupUserServiceMocks(t *testing.T) (*UserService, *mock.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock.NewMockUserRepo(ctrl)
	repos := &repository.Repos{
		User: mockUser,
	}
	svc := NewUserService(repos)
	return svc, mockUser
}

// --------------------- Register ---------------------
func TestRegister_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail("alice@test.com").Return(user.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
		assert.Equal(t, "alice@test.com", u.Email)
		assert.Equal(t, user.TypeOrigin, u.Type)
		assert.NotEqual(t, "123456", u.Password)
		return nil
	})

	err := svc.Register(user.RegisterDTO{
		Email:    "alice@test.com",
		Username: "alice",
		Password: "123456",
	})
	assert.NoError(t, err)
}

func TestRegister_EmailTaken(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail("taken@test.com").
		Return(user.User{ID: 1, Type: user.TypeOrigin}, nil)

	err := svc.Register(user.RegisterDTO{Email: "taken@test.com", Username: "x", Password: "123456"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_ClaimsExternalIdentity(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	// An external identity minted for a past signing round is claimable.
	mockUser.EXPECT().GetUserByEmail("signer@test.com").
		Return(user.User{ID: 7, Type: user.TypeExternal}, nil)
	mockUser.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
		assert.Equal(t, uint(7), u.ID)
		assert.Equal(t, user.TypeOrigin, u.Type)
		return nil
	})

	err := svc.Register(user.RegisterDTO{Email: "signer@test.com", Username: "signer", Password: "123456"})
	assert.NoError(t, err)
}

// --------------------- Login ---------------------
func TestLogin_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	usr := user.User{ID: 1, Email: "bob@test.com", Username: "bob", Password: string(hashed)}

	mockUser.EXPECT().GetUserByEmail("bob@test.com").Return(usr, nil)

	oldGen := middleware.GenerateToken
	middleware.GenerateToken = func(userID uint, username, email string, expireDuration time.Duration) (string, error) {
		return "token123", nil
	}
	defer func() { middleware.GenerateToken = oldGen }()

	u, token, err := svc.Login("bob@test.com", "123456")
	assert.NoError(t, err)
	assert.Equal(t, "bob", u.Username)
	assert.Equal(t, "token123", token)
}

func TestLogin_InvalidPassword(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	usr := user.User{ID: 1, Email: "bob@test.com", Password: string(hashed)}

	mockUser.EXPECT().GetUserByEmail("bob@test.com").Return(usr, nil)

	_, token, err := svc.Login("bob@test.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token)
}

func TestLogin_ExternalIdentityHasNoPassword(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail("ext@test.com").
		Return(user.User{ID: 2, Type: user.TypeExternal}, nil)

	_, _, err := svc.Login("ext@test.com", "anything")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UserNotFound(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByEmail("nobody@test.com").Return(user.User{}, gorm.ErrRecordNotFound)

	_, _, err := svc.Login("nobody@test.com", "123456")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// --------------------- FindUserByID ---------------------
func TestFindUserByID_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(1)).Return(user.User{ID: 1, Username: "alice"}, nil)

	usr, err := svc.FindUserByID(1)
	assert.NoError(t, err)
	assert.Equal(t, "alice", usr.Username)
}

func TestFindUserByID_NotFound(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetUserByID(uint(999)).Return(user.User{}, errors.New("not found"))

	_, err := svc.FindUserByID(999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
