// Package memoria implementa los puertos de persistencia sobre mapas en
// memoria. Es el backend de respaldo cuando la conexión inicial a MongoDB
// falla: los datos se pierden al reiniciar el proceso.
//
// Los IDs son secuenciales con prefijo por entidad (PROD_1, CLI_1, TRX_1,
// USR_1, EVT_1), distintos del formato ObjectID del backend MongoDB. Todos
// los repos protegen sus mapas con RWMutex y devuelven copias defensivas.
package memoria
