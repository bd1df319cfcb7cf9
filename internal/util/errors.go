package util

import "errors"

var (
	ErrUserNotFound       = errors.New("pengguna tidak ditemukan")
	ErrEmailRegistered    = errors.New("email sudah terdaftar")
	ErrInvalidCredentials = errors.New("email atau kata sandi salah")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrTokenRevoked       = errors.New("sesi sudah berakhir")
	ErrInvalidQuizSet     = errors.New("jenis kuis tidak dikenal")
	ErrInvalidTopic       = errors.New("topik media tidak dikenal")
	ErrInvalidMediaKind   = errors.New("jenis media tidak dikenal")
	ErrInvalidFileType    = errors.New("tipe berkas tidak diizinkan")
	ErrFileTooLarge       = errors.New("ukuran berkas terlalu besar")
	ErrInvalidQuestion    = errors.New("pertanyaan tidak valid")
	ErrInvalidMediaLink   = errors.New("tautan media wajib diisi")
)
