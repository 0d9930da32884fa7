package user

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/back-informatica/chamados/internal/application/user/dto"
)

func TestNewCommand_Subcommands(t *testing.T) {
	cmd := NewCommand()

	create, _, err := cmd.Find([]string{"create"})
	require.NoError(t, err)
	assert.Equal(t, "create", create.Name())
	assert.NotNil(t, create.Flags().Lookup("password"))
	assert.Equal(t, "cliente", create.Flags().Lookup("role").DefValue)

	block, _, err := cmd.Find([]string{"block"})
	require.NoError(t, err)
	assert.Equal(t, "block", block.Name())
}

func TestBlockCommand_RequiresSelector(t *testing.T) {
	cmd := NewCommand()
	cmd.SetArgs([]string{"block"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	assert.ErrorContains(t, err, "--id or --username")
}

func TestCreateOptions_Command(t *testing.T) {
	opts := createOptions{username: "maria", role: "tecnico", empresaID: "E1", password: "s3cretpass"}
	c := opts.command()
	assert.Equal(t, "maria", c.Username)
	assert.Equal(t, "tecnico", c.Role)
	assert.Equal(t, "E1", c.EmpresaID)
	assert.Equal(t, "s3cretpass", c.Password)
}

func TestPrintUser(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printUser(&buf, &dto.UserDTO{ID: "u1", Username: "maria", Status: "active"}))
	assert.Contains(t, buf.String(), `"username": "maria"`)
	assert.NotContains(t, buf.String(), "password")
}
