// Package tools expone el motor como superficie de tool-calls para un host
// de agentes externo. Cada tool decodifica los mismos DTOs y llama los
// mismos casos de uso que los handlers HTTP, así que las dos superficies
// producen cuerpos byte-equivalentes por construcción. Toda capacidad
// nueva del motor debe registrarse aquí y en el router HTTP a la vez,
// o en ninguno.
package tools

import (
	"context"
	"encoding/json"

	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/domain"
)

// HandlerFunc ejecuta una tool con argumentos JSON crudos.
type HandlerFunc func(ctx context.Context, args json.RawMessage) (interface{}, error)

// Tool es una capacidad invocable por nombre.
type Tool struct {
	Name        string
	Description string
	Handler     HandlerFunc
}

// Info descripción pública de una tool (para el host de agentes).
type Info struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Registry resuelve tools por nombre. El estado es de solo lectura después
// del registro inicial: ningún "tool seleccionado" mutable vive aquí, el
// contexto de cada llamada viaja como parámetro.
type Registry struct {
	order []string
	tools map[string]Tool
}

// NewRegistry construye un registro vacío.
func NewRegistry() *Registry {
	return &Registry{tools: map[string]Tool{}}
}

// Register agrega una tool. Un nombre duplicado reemplaza al anterior
// pero conserva su posición en el listado.
func (r *Registry) Register(t Tool) {
	if _, exists := r.tools[t.Name]; !exists {
		r.order = append(r.order, t.Name)
	}
	r.tools[t.Name] = t
}

// List devuelve las tools en orden de registro.
func (r *Registry) List() []Info {
	infos := make([]Info, 0, len(r.order))
	for _, name := range r.order {
		t := r.tools[name]
		infos = append(infos, Info{Name: t.Name, Description: t.Description})
	}
	return infos
}

// Call ejecuta la tool indicada. Un nombre desconocido es un error de
// validación del contrato externo, no un pánico ni un 404 de transporte.
func (r *Registry) Call(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	t, ok := r.tools[name]
	if !ok {
		return nil, domain.NewValidationError("tool", "tool desconocida: "+name)
	}
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}
	return t.Handler(ctx, args)
}

// decode deserializa los argumentos de una tool; un JSON malformado se
// reporta como VALIDATION_ERROR, igual que un body inválido en HTTP.
func decode(args json.RawMessage, v interface{}) error {
	if err := json.Unmarshal(args, v); err != nil {
		return domain.NewValidationError("arguments", "argumentos JSON inválidos")
	}
	return nil
}
