package game

import (
	"math"
	"strings"
)

// ShortestPath uses Dijkstra's Algorithm to find the shortest sequence of
// rooms leading from one room to another through the exits the rooms have
// right now. Exits that actions add later are not considered.
//
// Returns an empty slice if either label is not in the world, if they are the
// same room, or if there is no path.
func (w *World) ShortestPath(startLabel, endLabel string) []string {
	source := w.Room(startLabel)
	target := w.Room(endLabel)
	if source == nil || target == nil || source == target {
		return []string{}
	}

	dist, prev := w.dijkstra(source, target)
	if dist[target.Label()] == math.MaxUint {
		return []string{}
	}

	var reversed []string
	for u := target; u != nil; u = prev[u.Label()] {
		reversed = append(reversed, u.Label())
	}
	solution := make([]string, len(reversed))
	for i := range reversed {
		solution[len(reversed)-1-i] = reversed[i]
	}
	return solution
}

// Unreachable returns the labels of every room that cannot be walked to from
// the room labeled from using the exits rooms have right now. Rooms that only
// an action's new exit leads to are included.
func (w *World) Unreachable(from string) []string {
	source := w.Room(from)
	if source == nil {
		return nil
	}

	dist, _ := w.dijkstra(source, nil)
	var labels []string
	for _, label := range w.roomOrder {
		if dist[label] == math.MaxUint {
			labels = append(labels, label)
		}
	}
	return labels
}

// dijkstra gives the distance to each room from source and the room each was
// reached from. It stops early once target is settled; target may be nil to
// settle every room.
func (w *World) dijkstra(source, target *Room) (map[string]uint, map[string]*Room) {
	dist := map[string]uint{}
	prev := map[string]*Room{}
	searchSetQ := map[string]*Room{}

	for label, room := range w.rooms {
		dist[label] = math.MaxUint
		searchSetQ[label] = room
	}
	dist[source.Label()] = 0

	for len(searchSetQ) > 0 {
		var minDist uint = math.MaxUint
		var u *Room
		for label, room := range searchSetQ {
			if dist[label] < minDist || u == nil {
				u = room
				minDist = dist[label]
			}
		}

		// everything left is unreachable
		if minDist == math.MaxUint {
			break
		}
		if u == target {
			break
		}
		delete(searchSetQ, u.Label())

		for _, ex := range u.Exits() {
			if ex.Dest == nil {
				continue
			}
			v, ok := searchSetQ[ex.Dest.Label()]
			if !ok {
				continue
			}

			// every room movement has edge length of 1 in the world graph
			alt := dist[u.Label()] + 1
			if alt < dist[v.Label()] {
				dist[v.Label()] = alt
				prev[v.Label()] = u
			}
		}
	}

	return dist, prev
}

// PathString formats a path of room labels for logs and debug output.
func PathString(path []string) string {
	if len(path) == 0 {
		return "(none)"
	}
	return strings.Join(path, " -> ")
}
