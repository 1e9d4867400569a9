package ast

type NodeType int

const (
	NodeSelect NodeType = iota
	NodeWhere
	NodeCondition
	NodeOrderBy
	NodeLimit
)

type Node interface {
	Type() NodeType
	Accept(v Visitor) error
	Fingerprint() uint64
}
