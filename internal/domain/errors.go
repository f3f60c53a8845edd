package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrWrongPassword      = errors.New("la contraseña actual no es correcta")
	// ErrUpstream envuelve fallas de las fuentes externas (base de extracción).
	ErrUpstream = errors.New("fuente de datos no disponible")
)
