package codec

import (
	"database/sql/driver"
	"fmt"

	"github.com/leapstack-labs/pgxcube/pkg/cube"
)

// NullCube carries a cube value through database/sql, including the pgx
// stdlib driver. Like sql.NullString, Valid is false when the column was
// NULL.
type NullCube struct {
	Cube  cube.Cube
	Valid bool
}

// Scan implements sql.Scanner. It accepts the cube text representation as
// string or []byte, or nil for NULL.
func (n *NullCube) Scan(src any) error {
	switch src := src.(type) {
	case nil:
		*n = NullCube{}
		return nil
	case string:
		return n.scanText(src)
	case []byte:
		return n.scanText(string(src))
	}
	return fmt.Errorf("cannot scan %T into NullCube", src)
}

func (n *NullCube) scanText(src string) error {
	c, err := Parse(src)
	if err != nil {
		return err
	}
	*n = NullCube{Cube: c, Valid: true}
	return nil
}

// Value implements driver.Valuer, producing the cube text representation.
func (n NullCube) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return Format(n.Cube), nil
}
