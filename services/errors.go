package services

import (
	"errors"
	"fmt"
)

// ServiceError servis katmanının hata türleri. errors.Is ile kontrol edilir.
type ServiceError string

func (e ServiceError) Error() string { return string(e) }

const (
	ErrValidation         ServiceError = "data tidak valid"
	ErrConflict           ServiceError = "data sudah digunakan"
	ErrNotFound           ServiceError = "data tidak ditemukan"
	ErrForbidden          ServiceError = "anda tidak memiliki akses"
	ErrRateLimited        ServiceError = "terlalu banyak percobaan login, silakan coba lagi nanti"
	ErrAlreadyResponded   ServiceError = "anda sudah mengisi RSVP sebelumnya"
	ErrStorageFailure     ServiceError = "terjadi kesalahan pada sistem, silakan coba lagi"
	ErrInvalidCredentials ServiceError = "username atau password salah"
)

// detailError kullanıcıya gösterilebilir bir açıklamayı hata türüyle birlikte taşır.
type detailError struct {
	kind ServiceError
	msg  string
}

func (e *detailError) Error() string { return e.msg }
func (e *detailError) Unwrap() error { return e.kind }

func validationError(format string, args ...interface{}) error {
	return &detailError{kind: ErrValidation, msg: fmt.Sprintf(format, args...)}
}

func conflictError(format string, args ...interface{}) error {
	return &detailError{kind: ErrConflict, msg: fmt.Sprintf(format, args...)}
}

// storageError veritabanı/dosya hatasını sarar. Ayrıntı kullanıcıya gösterilmez.
func storageError(err error) error {
	return fmt.Errorf("%w: %v", ErrStorageFailure, err)
}

// PublicMessage hatanın kullanıcıya gösterilecek metni.
func PublicMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrStorageFailure) {
		return ErrStorageFailure.Error()
	}
	var de *detailError
	if errors.As(err, &de) {
		return de.msg
	}
	var se ServiceError
	if errors.As(err, &se) {
		return se.Error()
	}
	return ErrStorageFailure.Error()
}
