// Package model defines the database entity models.
// This file defines the user model with profile and credential fields.
package model

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User is a registered account.
// Referenced, never owned, by every other entity.
type User struct {
	gorm.Model // embeds ID, CreatedAt, UpdatedAt, DeletedAt

	// Uuid is the stable public identifier.
	// Format: U + 19 char timestamp-random string, e.g. "U241230AbCdE1234567"
	Uuid string `gorm:"column:uuid;uniqueIndex;type:char(20);comment:public user id"`

	// Email is the login identity, unique across accounts.
	Email string `gorm:"column:email;uniqueIndex;type:varchar(100);not null;comment:login email"`

	// Nickname is the display name shown to other users.
	Nickname string `gorm:"column:nickname;type:varchar(50);not null;comment:display name"`

	// Password stores the bcrypt hash, never the plaintext.
	Password string `gorm:"column:password;type:varchar(100);not null;comment:bcrypt hash"`

	// RawPassword receives the plaintext from the signup request and is
	// hashed into Password by the BeforeSave hook. Never persisted.
	RawPassword string `gorm:"-" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// BeforeSave hashes RawPassword into Password so callers only ever set the
// plaintext field.
func (u *User) BeforeSave(tx *gorm.DB) (err error) {
	if u.RawPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.RawPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.Password = string(hash)
		u.RawPassword = ""
	}
	return nil
}

// CheckPassword verifies a login attempt against the stored hash.
func (u *User) CheckPassword(plaintext string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plaintext))
	return err == nil
}
