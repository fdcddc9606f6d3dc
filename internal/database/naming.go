package database

import (
	"fmt"

	"gorm.io/gorm/schema"
)

// NamingStrategy is GORM's default naming strategy with foreign key
// constraints named fk_<table>_<column>_<referred_table>, so the generated
// names stay the same whichever side of the relationship declares it.
type NamingStrategy struct {
	schema.NamingStrategy
}

// NewNamingStrategy returns the naming strategy used for every connection
func NewNamingStrategy() NamingStrategy {
	return NamingStrategy{NamingStrategy: schema.NamingStrategy{IdentifierMaxLength: 64}}
}

// RelationshipFKName implements schema.Namer
func (ns NamingStrategy) RelationshipFKName(rel schema.Relationship) string {
	for _, ref := range rel.References {
		if ref.PrimaryKey == nil || ref.ForeignKey == nil {
			continue
		}
		return ForeignKeyName(ref.ForeignKey.Schema.Table, ref.ForeignKey.DBName, ref.PrimaryKey.Schema.Table)
	}
	return ns.NamingStrategy.RelationshipFKName(rel)
}

// ForeignKeyName formats a foreign key constraint name
func ForeignKeyName(table, column, referredTable string) string {
	return fmt.Sprintf("fk_%s_%s_%s", table, column, referredTable)
}
