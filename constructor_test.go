package ioc

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test types for constructor analysis
type testDatabase struct {
	connStr string
}

type testLogger struct {
	level string
}

type testUserService struct {
	db     *testDatabase
	logger *testLogger
}

func newTestDatabase() *testDatabase {
	return &testDatabase{connStr: "postgres://localhost/test"}
}

func newTestLogger() *testLogger {
	return &testLogger{level: "info"}
}

func newTestUserService(db *testDatabase, logger *testLogger) *testUserService {
	return &testUserService{db: db, logger: logger}
}

func newTestUserServiceWithDB(db *testDatabase) *testUserService {
	return &testUserService{db: db}
}

func newTestUserServiceWithLogger(logger *testLogger) *testUserService {
	return &testUserService{logger: logger}
}

func newTestUserServiceWithError(db *testDatabase) (*testUserService, error) {
	if db == nil {
		return nil, errors.New("database is required")
	}
	return &testUserService{db: db}, nil
}

func TestAnalyzeConstructor_Simple(t *testing.T) {
	plan, err := analyzeConstructor(newTestDatabase)
	require.NoError(t, err)

	assert.Equal(t, reflect.TypeOf(&testDatabase{}), plan.implementation)
	assert.Empty(t, plan.params)
	assert.False(t, plan.hasError)
}

func TestAnalyzeConstructor_WithParamsAndError(t *testing.T) {
	plan, err := analyzeConstructor(newTestUserServiceWithError)
	require.NoError(t, err)

	assert.Equal(t, reflect.TypeOf(&testUserService{}), plan.implementation)
	assert.Equal(t, []ServiceKey{KeyOf[*testDatabase]()}, plan.params)
	assert.True(t, plan.hasError)
}

func TestAnalyzeConstructor_Invalid(t *testing.T) {
	tests := []struct {
		name string
		ctor any
	}{
		{"nil", nil},
		{"not a function", "hello"},
		{"nil function", (func() *testDatabase)(nil)},
		{"no results", func() {}},
		{"only error", func() error { return nil }},
		{"second result not error", func() (*testDatabase, string) { return nil, "" }},
		{"too many results", func() (*testDatabase, *testLogger, error) { return nil, nil, nil }},
		{"variadic", func(...string) *testDatabase { return nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := analyzeConstructor(tt.ctor)
			assert.Error(t, err)
		})
	}
}

func TestSelectConstructor_Single(t *testing.T) {
	plan, err := selectConstructor([]any{newTestUserServiceWithDB})
	require.NoError(t, err)
	assert.Equal(t, []ServiceKey{KeyOf[*testDatabase]()}, plan.params)
}

func TestSelectConstructor_None(t *testing.T) {
	_, err := selectConstructor(nil)
	assert.Error(t, err)
}

func TestSelectConstructor_MostParametersWins(t *testing.T) {
	plan, err := selectConstructor([]any{
		newTestUserServiceWithDB,
		newTestUserService,
		newTestUserServiceWithLogger,
	})
	require.NoError(t, err)
	assert.Len(t, plan.params, 2)
}

func TestSelectConstructor_TieBrokenBySignature(t *testing.T) {
	// "*ioc.testDatabase" sorts before "*ioc.testLogger"
	for _, ctors := range [][]any{
		{newTestUserServiceWithLogger, newTestUserServiceWithDB},
		{newTestUserServiceWithDB, newTestUserServiceWithLogger},
	} {
		plan, err := selectConstructor(ctors)
		require.NoError(t, err)
		assert.Equal(t, []ServiceKey{KeyOf[*testDatabase]()}, plan.params)
	}
}

func TestSelectConstructor_MixedImplementations(t *testing.T) {
	_, err := selectConstructor([]any{newTestUserServiceWithDB, newTestDatabase})
	assert.Error(t, err)
}

func TestConstructorPlan_Invoke(t *testing.T) {
	plan, err := analyzeConstructor(newTestUserService)
	require.NoError(t, err)

	db := newTestDatabase()
	out, err := plan.invoke([]any{db, nil})
	require.NoError(t, err)

	svc := out.(*testUserService)
	assert.Same(t, db, svc.db)
	assert.Nil(t, svc.logger)
}

func TestConstructorPlan_InvokeError(t *testing.T) {
	plan, err := analyzeConstructor(newTestUserServiceWithError)
	require.NoError(t, err)

	out, err := plan.invoke([]any{nil})
	assert.Nil(t, out)
	assert.EqualError(t, err, "database is required")
}
