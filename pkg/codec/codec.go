package codec

import (
	"context"
	"database/sql/driver"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/leapstack-labs/pgxcube/pkg/cube"
)

// CubeCodec is a pgtype.Codec for the cube extension type. Only the text
// format is supported; the extension defines no binary send/recv.
type CubeCodec struct{}

// Register registers the cube type under oid on the given type map.
// The extension's OID is assigned per database, so callers must resolve it
// first; RegisterConn does both in one step.
func Register(m *pgtype.Map, oid uint32) {
	m.RegisterType(&pgtype.Type{Name: "cube", OID: oid, Codec: CubeCodec{}})
}

// RegisterConn resolves the cube extension's OID from pg_type and registers
// the codec on the connection's type map. It fails when the extension is
// not installed in the connected database.
func RegisterConn(ctx context.Context, conn *pgx.Conn) error {
	var oid uint32
	err := conn.QueryRow(ctx,
		"select oid from pg_catalog.pg_type where typname = 'cube' and typtype = 'b'",
	).Scan(&oid)
	if err != nil {
		return fmt.Errorf("resolve cube type oid (is the cube extension installed?): %w", err)
	}
	Register(conn.TypeMap(), oid)
	return nil
}

func (CubeCodec) FormatSupported(format int16) bool {
	return format == pgtype.TextFormatCode
}

func (CubeCodec) PreferredFormat() int16 {
	return pgtype.TextFormatCode
}

func (CubeCodec) PlanEncode(m *pgtype.Map, oid uint32, format int16, value any) pgtype.EncodePlan {
	if format != pgtype.TextFormatCode {
		return nil
	}

	switch value.(type) {
	case cube.Cube:
		return encodePlanCubeText{}
	case NullCube:
		return encodePlanNullCubeText{}
	case string:
		return encodePlanStringText{}
	}
	return nil
}

type encodePlanCubeText struct{}

func (encodePlanCubeText) Encode(value any, buf []byte) ([]byte, error) {
	return append(buf, Format(value.(cube.Cube))...), nil
}

type encodePlanNullCubeText struct{}

func (encodePlanNullCubeText) Encode(value any, buf []byte) ([]byte, error) {
	n := value.(NullCube)
	if !n.Valid {
		return nil, nil
	}
	return append(buf, Format(n.Cube)...), nil
}

// encodePlanStringText passes pre-formatted cube text through unchanged,
// letting the server reject anything malformed.
type encodePlanStringText struct{}

func (encodePlanStringText) Encode(value any, buf []byte) ([]byte, error) {
	return append(buf, value.(string)...), nil
}

func (CubeCodec) PlanScan(m *pgtype.Map, oid uint32, format int16, target any) pgtype.ScanPlan {
	if format != pgtype.TextFormatCode {
		return nil
	}

	switch target.(type) {
	case *cube.Cube:
		return scanPlanCubeText{}
	case *NullCube:
		return scanPlanNullCubeText{}
	case *string:
		return scanPlanStringText{}
	}
	return nil
}

type scanPlanCubeText struct{}

func (scanPlanCubeText) Scan(src []byte, target any) error {
	if src == nil {
		return fmt.Errorf("cannot scan NULL into %T", target)
	}
	c, err := Parse(string(src))
	if err != nil {
		return err
	}
	*target.(*cube.Cube) = c
	return nil
}

type scanPlanNullCubeText struct{}

func (scanPlanNullCubeText) Scan(src []byte, target any) error {
	n := target.(*NullCube)
	if src == nil {
		*n = NullCube{}
		return nil
	}
	c, err := Parse(string(src))
	if err != nil {
		return err
	}
	*n = NullCube{Cube: c, Valid: true}
	return nil
}

type scanPlanStringText struct{}

func (scanPlanStringText) Scan(src []byte, target any) error {
	if src == nil {
		return fmt.Errorf("cannot scan NULL into %T", target)
	}
	*target.(*string) = string(src)
	return nil
}

func (c CubeCodec) DecodeDatabaseSQLValue(m *pgtype.Map, oid uint32, format int16, src []byte) (driver.Value, error) {
	if src == nil {
		return nil, nil
	}
	return string(src), nil
}

func (c CubeCodec) DecodeValue(m *pgtype.Map, oid uint32, format int16, src []byte) (any, error) {
	if src == nil {
		return nil, nil
	}
	return Parse(string(src))
}
