package navigation

import (
	"fmt"
	"strings"
	"unicode"
)

// Command is a named navigation bound to a predicate and a projector.
type Command struct {
	ID          string
	Description string
	Predicate   Predicate
	Projector   Projector
}

// ToolName returns the snake case form of the command ID.
func (c Command) ToolName() string {
	var b strings.Builder
	for i, r := range c.ID {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// CommandTable holds the commands in registration order.
type CommandTable struct {
	commands []Command
	byID     map[string]Command
}

type commandRow struct {
	target    string
	noun      string
	predicate Predicate
}

var commandRows = []commandRow{
	{target: "Symbol", noun: "symbol", predicate: PredicateAny},
	{target: "Class", noun: "class", predicate: PredicateClass},
	{target: "Function", noun: "function or method", predicate: PredicateFunction},
	{target: "NamedFunction", noun: "named function or method", predicate: PredicateNamedFunction},
}

// NewCommandTable builds the jump and select command for every symbol target.
func NewCommandTable() *CommandTable {
	table := &CommandTable{byID: make(map[string]Command)}
	for _, row := range commandRows {
		table.add(Command{
			ID: "jumpToContaining" + row.target,
			Description: fmt.Sprintf("Move each cursor to the name of the %s containing it. "+
				"Repeating the command from that name moves to the next enclosing %s.", row.noun, row.noun),
			Predicate: row.predicate,
			Projector: ProjectNameToken,
		})
		table.add(Command{
			ID: "selectContaining" + row.target,
			Description: fmt.Sprintf("Select the whole definition of the %s containing each cursor. "+
				"Repeating the command selects the next enclosing %s.", row.noun, row.noun),
			Predicate: row.predicate,
			Projector: ProjectDefinition,
		})
	}
	return table
}

func (t *CommandTable) add(cmd Command) {
	t.commands = append(t.commands, cmd)
	t.byID[cmd.ID] = cmd
}

// All returns the commands in registration order.
func (t *CommandTable) All() []Command {
	commands := make([]Command, len(t.commands))
	copy(commands, t.commands)
	return commands
}

// Lookup finds a command by ID or by tool name.
func (t *CommandTable) Lookup(name string) (Command, bool) {
	if cmd, ok := t.byID[name]; ok {
		return cmd, true
	}
	for _, cmd := range t.commands {
		if cmd.ToolName() == name {
			return cmd, true
		}
	}
	return Command{}, false
}
