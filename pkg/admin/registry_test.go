package admin_test

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/honohub/pkg/admin"
	"github.com/dmitrymomot/honohub/pkg/configerr"
)

func TestRegistryRegister(t *testing.T) {
	t.Parallel()

	reg := admin.NewRegistry(admin.Meta{})
	require.NoError(t, reg.Register("users", admin.NamedTarget{Module: "pages/Users", Component: "UsersPage"}))
	require.NoError(t, reg.Register("dashboard", admin.StringTarget("components/Dashboard")))
	require.NoError(t, reg.Register("settings", &admin.NamedTarget{Module: "pages/Settings", Component: "Settings"}))

	assert.Equal(t, 3, reg.Len())
	assert.Equal(t, []string{"dashboard", "settings", "users"}, reg.Keys())

	target, ok := reg.Lookup("settings")
	require.True(t, ok)
	assert.IsType(t, admin.NamedTarget{}, target)

	_, ok = reg.Lookup("missing")
	assert.False(t, ok)
	assert.NoError(t, reg.Err())
}

func TestRegistryRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		key        string
		target     admin.Target
		constraint string
	}{
		{name: "empty key", key: "", target: admin.StringTarget("x"), constraint: admin.ConstraintEmptyKey},
		{name: "nil target", key: "a", target: nil, constraint: admin.ConstraintInvalidTarget},
		{name: "empty module", key: "a", target: admin.StringTarget(""), constraint: admin.ConstraintInvalidTarget},
		{name: "named without component", key: "a", target: admin.NamedTarget{Module: "m"}, constraint: admin.ConstraintInvalidTarget},
		{name: "nil named pointer", key: "a", target: (*admin.NamedTarget)(nil), constraint: admin.ConstraintInvalidTarget},
		{name: "component with space", key: "a", target: admin.NamedTarget{Module: "m", Component: "Users Page"}, constraint: admin.ConstraintInvalidTarget},
		{name: "lowercase component", key: "a", target: admin.NamedTarget{Module: "m", Component: "usersPage"}, constraint: admin.ConstraintInvalidTarget},
		{name: "component starting with digit", key: "a", target: admin.NamedTarget{Module: "m", Component: "404Page"}, constraint: admin.ConstraintInvalidTarget},
		{name: "component shadows React", key: "a", target: admin.NamedTarget{Module: "m", Component: "React"}, constraint: admin.ConstraintInvalidTarget},
		{name: "component shadows ReactDOM", key: "a", target: &admin.NamedTarget{Module: "m", Component: "ReactDOM"}, constraint: admin.ConstraintInvalidTarget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			reg := admin.NewRegistry(admin.Meta{})
			err := reg.Register(tt.key, tt.target)
			require.ErrorIs(t, err, configerr.ErrConfiguration)
			ce, ok := configerr.As(err)
			require.True(t, ok)
			assert.Equal(t, tt.constraint, ce.Constraint)
			assert.Equal(t, 0, reg.Len())
		})
	}
}

func TestRegistryDuplicateKey(t *testing.T) {
	t.Parallel()

	reg := admin.NewRegistry(admin.Meta{})
	require.NoError(t, reg.Register("dashboard", admin.StringTarget("a")))

	err := reg.Register("dashboard", admin.StringTarget("b"))
	require.ErrorIs(t, err, configerr.ErrConfiguration)
	assert.Contains(t, err.Error(), `"dashboard"`)

	// First registration wins and the rejection is remembered.
	target, _ := reg.Lookup("dashboard")
	assert.Equal(t, admin.StringTarget("a"), target)
	assert.ErrorIs(t, reg.Err(), configerr.ErrConfiguration)
}

func TestRegistryFreeze(t *testing.T) {
	t.Parallel()

	reg := admin.NewRegistry(admin.Meta{Title: "Before"})
	reg.Freeze()
	assert.True(t, reg.Frozen())

	assert.ErrorIs(t, reg.Register("late", admin.StringTarget("x")), admin.ErrFrozen)
	reg.SetMeta(admin.Meta{Title: "After"})
	assert.Equal(t, "Before", reg.Title())
	assert.NoError(t, reg.Err())
}

func TestRegistryTitle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, admin.DefaultTitle, admin.NewRegistry(admin.Meta{}).Title())
	assert.Equal(t, "Acme", admin.NewRegistry(admin.Meta{Title: "Acme"}).Title())
}

func TestRegistryConcurrentReads(t *testing.T) {
	t.Parallel()

	reg := admin.NewRegistry(admin.Meta{})
	require.NoError(t, reg.Register("a", admin.StringTarget("a")))
	reg.Freeze()

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = reg.Lookup("a")
			_ = reg.Keys()
		}()
	}
	wg.Wait()
}

func TestTargetImport(t *testing.T) {
	t.Parallel()

	st := admin.StringTarget("components/Dashboard")
	assert.Equal(t, `import Dashboard from "components/Dashboard"`, st.Import())
	assert.Equal(t, "Dashboard", st.Identifier())

	nt := admin.NamedTarget{Module: "pages/Users", Component: "UsersPage"}
	assert.Equal(t, `import { UsersPage } from "pages/Users"`, nt.Import())
	assert.Equal(t, "UsersPage", nt.Identifier())

	quoted := admin.NamedTarget{Module: `pages/"x"`, Component: "X"}
	assert.Equal(t, `import { X } from "pages/\"x\""`, quoted.Import())
	assert.Equal(t, `import X from "a\"b/X"`, admin.StringTarget(`a"b/X`).Import())
}

func TestTargetJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(map[string]admin.Target{
		"a": admin.StringTarget("mod/A"),
		"b": admin.NamedTarget{Module: "mod/B", Component: "B"},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"mod/A","b":{"module":"mod/B","component":"B"}}`, string(data))
}

func TestStringTargetIdentifier(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"components/Dashboard":   "Dashboard",
		"./pages/user-list.tsx":  "UserList",
		"@acme/admin":            "Admin",
		"pages/settings_page.js": "SettingsPage",
		"pages/404":              admin.DefaultIdentifier,
		"..":                     admin.DefaultIdentifier,
		"components/React":       admin.DefaultIdentifier,
		"lib/react":              admin.DefaultIdentifier,
		"vendor/ReactDOM.tsx":    admin.DefaultIdentifier,
		"components/ReactTable":  "ReactTable",
	}
	for in, want := range tests {
		assert.Equal(t, want, admin.StringTarget(in).Identifier(), in)
	}
}
