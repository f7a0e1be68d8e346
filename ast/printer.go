package ast

import "fmt"

// Print renders a node and its children as a nested map structure
// suitable for json.Marshal, used by the "lwc parse" subcommand to
// dump a parsed tree for inspection.
func Print(n Node) any {
	switch node := n.(type) {
	case nil:
		return nil
	case *Literal:
		return map[string]any{"type": "Literal", "value": node.Value.Literal}
	case *Accessible:
		return map[string]any{"type": "Accessible", "name": node.Name.Literal, "index": Print(node.Index)}
	case *Array:
		values := make([]any, len(node.Values))
		for i, v := range node.Values {
			values[i] = Print(v)
		}
		return map[string]any{"type": "Array", "values": values}
	case *Unary:
		return map[string]any{"type": "Unary", "operator": node.Operator.Literal, "value": Print(node.Value)}
	case *Binary:
		return map[string]any{"type": "Binary", "operator": node.Operator.Literal, "left": Print(node.Left), "right": Print(node.Right)}
	case *Group:
		return map[string]any{"type": "Group", "value": Print(node.Value)}
	case *Tern:
		return map[string]any{"type": "Tern", "cond": Print(node.Cond), "true": Print(node.CaseTrue), "false": Print(node.CaseFalse)}
	case *Cond:
		return map[string]any{"type": "Cond", "value": Print(node.Value)}
	case *Print:
		return map[string]any{"type": "Print", "value": Print(node.Value)}
	case *Assign:
		return map[string]any{"type": "Assign", "target": Print(node.Target), "operator": node.Operator.Literal, "value": Print(node.Value)}
	case *Init:
		return map[string]any{"type": "Init", "vartype": node.Type.Literal, "name": node.Name.Literal, "value": Print(node.Value)}
	case *If:
		return map[string]any{"type": "If", "cond": Print(node.Cond), "block": Print(node.Block), "elif": Print(node.Elif)}
	case *Else:
		return map[string]any{"type": "Else", "if": Print(node.If), "block": Print(node.Block)}
	case *ControlFlow:
		return map[string]any{"type": "ControlFlow", "keyword": node.Keyword.Literal}
	case *While:
		return map[string]any{"type": "While", "cond": Print(node.Cond), "block": Print(node.Block)}
	case *For:
		return map[string]any{"type": "For", "assign": Print(node.Assign), "cond": Print(node.Cond), "incr": Print(node.Incr), "block": Print(node.Block)}
	case *Func:
		return map[string]any{"type": "Func", "returnType": node.Type.Literal, "name": node.Name.Literal, "body": Print(node.Body)}
	case *Block:
		stmts := make([]any, len(node.Stmts))
		for i, s := range node.Stmts {
			stmts[i] = Print(s)
		}
		return map[string]any{"type": "Block", "statements": stmts}
	default:
		return fmt.Sprintf("<unknown node %T>", n)
	}
}
