package store

import "github.com/abhisek/studiq/internal/study"

// WorkspaceSnapshot serializes a workspace into snapshot form.
func WorkspaceSnapshot(ws *study.Workspace) *Snapshot {
	data := SnapshotData{
		Version: 1,
		Subject: ws.Subject,
	}
	for _, sec := range ws.Sections {
		data.Sections = append(data.Sections, SectionState{
			Name:   sec.Name,
			Topics: append([]string(nil), sec.Topics...),
		})
	}
	return &Snapshot{Data: data}
}

// RestoreWorkspace rebuilds a workspace from the snapshot, or returns
// an empty workspace for a nil snapshot.
func RestoreWorkspace(snap *Snapshot) *study.Workspace {
	ws := study.NewWorkspace()
	if snap == nil {
		return ws
	}
	ws.Subject = snap.Data.Subject
	for _, sec := range snap.Data.Sections {
		ws.Sections = append(ws.Sections, &study.Section{
			Name:   sec.Name,
			Topics: append([]string(nil), sec.Topics...),
		})
	}
	return ws
}
