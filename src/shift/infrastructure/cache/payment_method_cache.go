package cache

import (
	"database/sql"
	"log"
	"strings"
	"sync"
)

// PaymentMethodCache cache em memória dos rótulos de exibição das
// formas de pagamento, carregado uma vez na subida do serviço.
// Usado só na montagem do relatório de fechamento; o agrupamento
// em si trabalha com os códigos crus das vendas.
type PaymentMethodCache struct {
	names map[string]string // codigo → nome de exibição
	mu    sync.RWMutex
}

// NewPaymentMethodCache cria um cache vazio.
func NewPaymentMethodCache() *PaymentMethodCache {
	return &PaymentMethodCache{
		names: make(map[string]string),
	}
}

// LoadFromDB carrega as formas de pagamento ativas do banco.
func (c *PaymentMethodCache) LoadFromDB(conn *sql.DB) error {
	log.Println("🔄 Carregando formas de pagamento no cache...")

	query := `
		SELECT codigo, nome
		FROM formas_pagamento
		WHERE ativo = true
	`

	rows, err := conn.Query(query)
	if err != nil {
		log.Printf("⚠️  Aviso: não foi possível carregar formas de pagamento: %v", err)
		return err
	}
	defer rows.Close()

	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for rows.Next() {
		var codigo, nome string
		if err := rows.Scan(&codigo, &nome); err != nil {
			log.Printf("⚠️  Erro lendo forma de pagamento: %v", err)
			continue
		}
		c.names[codigo] = nome
		count++
	}

	log.Printf("✅ %d formas de pagamento carregadas no cache", count)
	return nil
}

// Put registra um rótulo manualmente (usado em testes e seeds).
func (c *PaymentMethodCache) Put(codigo, nome string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.names[codigo] = nome
}

// DisplayName devolve o nome de exibição de um código. Código
// desconhecido (ex.: bandeira de cartão não cadastrada) vira o
// próprio código com inicial maiúscula.
func (c *PaymentMethodCache) DisplayName(codigo string) string {
	c.mu.RLock()
	nome, ok := c.names[codigo]
	c.mu.RUnlock()

	if ok {
		return nome
	}
	if codigo == "" {
		return "Outro"
	}
	return strings.ToUpper(codigo[:1]) + codigo[1:]
}
