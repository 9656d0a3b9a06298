package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Davi-Bueno/api-vendas/internal/db"
	"github.com/Davi-Bueno/api-vendas/internal/models"
)

// newTestDB opens an in-memory SQLite database named after the test, wires
// it into the handlers and restores the previous one on cleanup.
func newTestDB(t *testing.T) *gorm.DB {
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	testDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = testDB.AutoMigrate(
		&models.Cliente{},
		&models.Vendedor{},
		&models.Eletrodomestico{},
		&models.Carrinho{},
		&models.CarrinhoEletro{},
	)
	require.NoError(t, err)

	originalDB := db.DB
	db.SetTestDB(testDB)
	t.Cleanup(func() { db.SetTestDB(originalDB) })

	return testDB
}

func jsonRequest(method, path string, body interface{}) *http.Request {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func perform(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, jsonRequest(method, path, body))
	return recorder
}

func decode(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	return resp
}

func detailsOf(t *testing.T, recorder *httptest.ResponseRecorder) []string {
	resp := decode(t, recorder)
	raw, _ := resp["details"].([]interface{})
	details := make([]string, 0, len(raw))
	for _, d := range raw {
		details = append(details, fmt.Sprint(d))
	}
	return details
}

func seedCliente(t *testing.T, testDB *gorm.DB, cpf string) models.Cliente {
	cliente := models.Cliente{
		Nome:     "João Silva",
		CPF:      cpf,
		Email:    "j@x.com",
		Telefone: "11987654321",
	}
	require.NoError(t, testDB.Create(&cliente).Error)
	return cliente
}

func seedVendedor(t *testing.T, testDB *gorm.DB) models.Vendedor {
	vendedor := models.Vendedor{Nome: "Loja Center", Email: "vendas@loja.com"}
	require.NoError(t, testDB.Create(&vendedor).Error)
	return vendedor
}

func seedEletrodomestico(t *testing.T, testDB *gorm.DB, vendedorID uint, preco float64) models.Eletrodomestico {
	eletro := models.Eletrodomestico{
		Nome:       "Geladeira Frost Free",
		Preco:      preco,
		Estoque:    10,
		VendedorID: vendedorID,
	}
	require.NoError(t, testDB.Create(&eletro).Error)
	return eletro
}

func seedCarrinho(t *testing.T, testDB *gorm.DB, clienteID, vendedorID uint) models.Carrinho {
	carrinho := models.Carrinho{ClienteID: clienteID, VendedorID: vendedorID}
	require.NoError(t, testDB.Create(&carrinho).Error)
	return carrinho
}
