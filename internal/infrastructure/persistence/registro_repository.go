package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fiscal/registros/internal/domain/registro"
	"github.com/fiscal/registros/internal/domain/shared"
	"gorm.io/gorm"
)

// TableNames names the two relations the registro view is assembled from.
// Values must be plain identifiers; config validation enforces this.
type TableNames struct {
	Registros string
	Clientes  string
}

// DefaultTableNames returns the production table names
func DefaultTableNames() TableNames {
	return TableNames{Registros: "RegistrosFiscales", Clientes: "tb_clientes"}
}

// GormRegistroRepository implements registro.Repository using GORM raw SQL
type GormRegistroRepository struct {
	db         *gorm.DB
	listSQL    string
	approveSQL string
}

// NewGormRegistroRepository creates a new GormRegistroRepository
func NewGormRegistroRepository(db *gorm.DB, tables TableNames) *GormRegistroRepository {
	return &GormRegistroRepository{
		db: db,
		listSQL: fmt.Sprintf(
			"SELECT rf.RFC, c.name AS NOMBRE, rf.Periodo AS PERIODO, rf.aprobacion AS APROBACION FROM %s rf INNER JOIN %s c ON c.rfc = rf.RFC",
			tables.Registros, tables.Clientes,
		),
		approveSQL: fmt.Sprintf("UPDATE %s SET aprobacion = ? WHERE RFC = ?", tables.Registros),
	}
}

// ListRegistrations returns every registration with a matching client, in store order
func (r *GormRegistroRepository) ListRegistrations(ctx context.Context) ([]registro.Registro, error) {
	rows, err := r.db.WithContext(ctx).Raw(r.listSQL).Rows()
	if err != nil {
		return nil, storeError("list registrations", err)
	}
	defer rows.Close()

	registros := make([]registro.Registro, 0)
	for rows.Next() {
		var (
			rec        registro.Registro
			aprobacion sql.NullBool
		)
		if err := rows.Scan(&rec.RFC, &rec.Nombre, &rec.Periodo, &aprobacion); err != nil {
			return nil, storeError("scan registration", err)
		}
		if aprobacion.Valid {
			approved := aprobacion.Bool
			rec.Aprobacion = &approved
		}
		registros = append(registros, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, storeError("list registrations", err)
	}

	return registros, nil
}

// SetApproval overwrites the approval flag for rfc and returns the rows affected
func (r *GormRegistroRepository) SetApproval(ctx context.Context, rfc string, approved bool) (int64, error) {
	result := r.db.WithContext(ctx).Exec(r.approveSQL, approved, rfc)
	if result.Error != nil {
		return 0, storeError("set approval", result.Error)
	}
	return result.RowsAffected, nil
}

func storeError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, shared.ErrStoreUnavailable, err)
}

var _ registro.Repository = (*GormRegistroRepository)(nil)
