package entity

import "errors"

var (
	// ErrShiftAlreadyOpen o funcionário já tem um turno aberto
	ErrShiftAlreadyOpen = errors.New("funcionário já possui turno aberto")

	// ErrNoOpenShift não há turno aberto para fechar
	ErrNoOpenShift = errors.New("nenhum turno aberto para o funcionário")

	// ErrNoSalesInShift o turno não registrou vendas; o fechamento não é gerado
	ErrNoSalesInShift = errors.New("nenhuma venda registrada no turno")
)
