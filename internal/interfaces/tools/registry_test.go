package tools_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/domain"
	"github.com/rrizwan98/StoreLite-IMS-sub002/internal/interfaces/tools"
)

func TestRegistry_CallDespachaPorNombre(t *testing.T) {
	reg := tools.NewRegistry()
	reg.Register(tools.Tool{
		Name: "echo",
		Handler: func(_ context.Context, args json.RawMessage) (interface{}, error) {
			var in map[string]string
			require.NoError(t, json.Unmarshal(args, &in))
			return in["msg"], nil
		},
	})

	out, err := reg.Call(context.Background(), "echo", json.RawMessage(`{"msg":"hola"}`))
	require.NoError(t, err)
	assert.Equal(t, "hola", out)
}

func TestRegistry_ToolDesconocida(t *testing.T) {
	reg := tools.NewRegistry()

	_, err := reg.Call(context.Background(), "no_existe", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation, "tool desconocida es error del contrato, no pánico")

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields["tool"], "no_existe")
}

func TestRegistry_ArgsVaciosEquivalenAObjetoVacio(t *testing.T) {
	reg := tools.NewRegistry()
	var got string
	reg.Register(tools.Tool{
		Name: "capture",
		Handler: func(_ context.Context, args json.RawMessage) (interface{}, error) {
			got = string(args)
			return nil, nil
		},
	})

	_, err := reg.Call(context.Background(), "capture", nil)
	require.NoError(t, err)
	assert.Equal(t, "{}", got)
}

func TestRegistry_ListConservaOrdenDeRegistro(t *testing.T) {
	reg := tools.NewRegistry()
	for _, name := range []string{"c_tool", "a_tool", "b_tool"} {
		reg.Register(tools.Tool{Name: name, Description: "desc " + name})
	}

	infos := reg.List()
	require.Len(t, infos, 3)
	assert.Equal(t, "c_tool", infos[0].Name)
	assert.Equal(t, "a_tool", infos[1].Name)
	assert.Equal(t, "b_tool", infos[2].Name)
	assert.Equal(t, "desc c_tool", infos[0].Description)
}
