// Package codec translates cube values to and from PostgreSQL's cube
// extension representations.
//
// It covers three surfaces:
//   - the extension's text syntax (Parse, Format),
//   - pgx native integration via a pgtype.Codec (CubeCodec, Register,
//     RegisterConn),
//   - database/sql integration via NullCube (sql.Scanner, driver.Valuer).
//
// The cube extension exposes no binary send/recv functions, so all wire
// traffic uses the text format.
package codec
