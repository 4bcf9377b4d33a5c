// Command gen writes typed gorm query helpers for the relational models.
package main

import (
	"tracker/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.EmployeeModel{},
		model.AccountModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
