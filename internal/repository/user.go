package repository

import (
	"errors"
	"strings"

	"github.com/quillsign/quillsign/internal/domain/user"
	"gorm.io/gorm"
)

type UserRepo interface {
	GetUserByID(id uint) (user.User, error)
	GetUserByEmail(email string) (user.User, error)
	SaveUser(u *user.User) error
	// GetOrCreateByEmail resolves an email to a durable identity, minting an
	// external one when the email is unknown. External signers need a stable
	// user id for the one-Signature-per-signer invariant.
	GetOrCreateByEmail(email, name string) (user.User, error)
	DeleteUser(id uint) error
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{
		db: db,
	}
}

func (r *DBUserRepo) GetUserByID(id uint) (user.User, error) {
	var u user.User
	if err := r.db.First(&u, id).Error; err != nil {
		return u, err
	}
	return u, nil
}

func (r *DBUserRepo) GetUserByEmail(email string) (user.User, error) {
	var u user.User
	if err := r.db.Where("LOWER(email) = LOWER(?)", email).First(&u).Error; err != nil {
		return u, err
	}
	return u, nil
}

func (r *DBUserRepo) SaveUser(u *user.User) error {
	return r.db.Save(u).Error
}

func (r *DBUserRepo) GetOrCreateByEmail(email, name string) (user.User, error) {
	u, err := r.GetUserByEmail(email)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return u, err
	}

	username := name
	if username == "" {
		username = strings.SplitN(email, "@", 2)[0]
	}
	u = user.User{
		Email:    strings.ToLower(email),
		Username: username,
		Type:     user.TypeExternal,
	}
	if err := r.db.Create(&u).Error; err != nil {
		return u, err
	}
	return u, nil
}

func (r *DBUserRepo) DeleteUser(id uint) error {
	return r.db.Delete(&user.User{}, id).Error
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{
		db: tx,
	}
}
