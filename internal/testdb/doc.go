// Package testdb provides utilities specifically for database testing.
//
// Its central mechanism is transactional test isolation: every test runs
// against a dedicated database transaction that is always rolled back when
// the test finishes, so each test observes the seeded baseline dataset and
// no test's mutations ever leak into another. The package also owns the
// shared connection pool for a test run and the seed loader that installs
// the baseline dataset.
//
// Typical usage:
//
//	func TestSomething(t *testing.T) {
//		db := testdb.GetTestDB(t)
//		testdb.SetupTestDatabaseSchema(t, db)
//		testdb.SeedBaseline(t, db)
//
//		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//			tools := postgres.NewPostgresToolStore(tx, nil)
//			// mutations here are rolled back automatically
//		})
//	}
//
// It maintains a clean dependency structure by only depending on store
// interfaces and standard database packages, not on delivery mechanisms.
package testdb
