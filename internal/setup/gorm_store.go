package setup

import (
	"context"

	gormAdapter "github.com/humlebaek/marks/internal/adapter/gorm"
	"github.com/humlebaek/marks/internal/config"
	"github.com/pkg/errors"

	_ "github.com/ncruces/go-sqlite3/embed"
)

var getGormStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*gormAdapter.Store, error) {
	db, err := getGormDatabaseFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return gormAdapter.NewStore(db), nil
})
