// Package workitem models the work items whose status changes drive
// processing: epics, stories and tasks.
//
// WorkItem is a closed interface. The only implementations are *Epic,
// *Story and *Task, and callers dispatch on them with a type switch:
//
//	switch it := item.(type) {
//	case *workitem.Epic:
//	case *workitem.Story:
//	case *workitem.Task:
//	}
//
// Every variant embeds Item, which holds the attributes they share.
package workitem
