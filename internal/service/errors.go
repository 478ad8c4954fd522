package service

import "errors"

// Sentinel business errors. Handlers map these to specific HTTP statuses
// (conflict, forbidden, not found); everything else is a plain 400.
var (
	ErrEmailDuplicado    = errors.New("el email ya esta registrado")
	ErrNoEncontrado      = errors.New("recurso no encontrado")
	ErrNoAutorizado      = errors.New("no autorizado para esta operacion")
	ErrIdentidadOcupada  = errors.New("ya existe una atencion en esa franja para la recalada")
	ErrTransicionInvalida = errors.New("transicion de estado invalida")
)
