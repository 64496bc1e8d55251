package rpsetting_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rlconnector/common/entity"
	"rlconnector/internal/app/domains/repo/rpsetting"
	"rlconnector/internal/app/pkg/testsuit"
)

func strPtr(s string) *string { return &s }

func TestSettingRepository_GetValue(t *testing.T) {
	db := testsuit.InitSQLite(t)
	require.NoError(t, db.Create(&[]entity.CoreConfigData{
		{Scope: entity.ScopeDefault, ScopeID: 0, Path: "returnless_connector/general/separate_bundle", Value: strPtr("1")},
		{Scope: entity.ScopeDefault, ScopeID: 0, Path: "returnless_connector/general/ean_attribute_code", Value: nil},
		{Scope: "stores", ScopeID: 1, Path: "returnless_connector/general/ean_attribute_code", Value: strPtr("ean")},
	}).Error)

	repo := rpsetting.NewSettingRepository(db)
	ctx := context.Background()

	value, found, err := repo.GetValue(ctx, "returnless_connector/general/separate_bundle")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "1", value)

	// NULL 与其它作用域都视为未配置
	_, found, err = repo.GetValue(ctx, "returnless_connector/general/ean_attribute_code")
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = repo.GetValue(ctx, "returnless_connector/general/absent")
	require.NoError(t, err)
	assert.False(t, found)
}
