package seeder

import "fmt"

// DependencyGraph orders tables so that every table is generated after the
// tables whose keys it references.
type DependencyGraph struct {
	tables map[string]*TableInfo
	names  []string
}

func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		tables: make(map[string]*TableInfo),
	}
}

func (g *DependencyGraph) AddTable(table *TableInfo) {
	if _, exists := g.tables[table.Name]; !exists {
		g.names = append(g.names, table.Name)
	}
	g.tables[table.Name] = table
}

// BuildGenerationOrder returns a topological order. Ties keep the order in
// which tables were added.
func (g *DependencyGraph) BuildGenerationOrder() ([]string, error) {
	visited := make(map[string]bool)
	temp := make(map[string]bool)
	var order []string

	var visit func(string) error
	visit = func(tableName string) error {
		if temp[tableName] {
			return fmt.Errorf("circular dependency detected involving table: %s", tableName)
		}
		if visited[tableName] {
			return nil
		}

		table, ok := g.tables[tableName]
		if !ok {
			return fmt.Errorf("unknown table: %s", tableName)
		}

		temp[tableName] = true
		for _, dep := range table.Dependencies {
			if dep == tableName {
				continue
			}
			if _, ok := g.tables[dep]; !ok {
				return fmt.Errorf("table %s depends on unknown table %s", tableName, dep)
			}
			if err := visit(dep); err != nil {
				return err
			}
		}

		temp[tableName] = false
		visited[tableName] = true
		order = append(order, tableName)
		return nil
	}

	for _, tableName := range g.names {
		if !visited[tableName] {
			if err := visit(tableName); err != nil {
				return nil, err
			}
		}
	}

	return order, nil
}
