package seq

import "fmt"

type Phase uint8

const (
	PhaseIdle       Phase = iota // 尚未發出任何請求
	PhaseInflight                // 最新請求尚未回來
	PhaseApplied                 // 最新請求的結果已套用
	PhaseSuperseded              // 請求已被更新的請求取代, 結果要丟掉
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseInflight:
		return "inflight"
	case PhaseApplied:
		return "applied"
	case PhaseSuperseded:
		return "superseded"
	default:
		return fmt.Sprintf("phase(%d)", uint8(p))
	}
}

// RequestState Inflight(seq) | Applied(seq) | Superseded
type RequestState struct {
	Phase Phase
	Seq   uint64
}

func (r RequestState) String() string {
	if r.Phase == PhaseSuperseded || r.Phase == PhaseIdle {
		return r.Phase.String()
	}
	return fmt.Sprintf("%s(%d)", r.Phase, r.Seq)
}

/*
Sequencer 發出單調遞增的請求序號, 只有最後發出的請求可以套用結果
本身不加鎖, 呼叫端必須用保護自身狀態的同一把鎖包住所有呼叫,
這樣「檢查是否最新」跟「寫入狀態」才會是原子的
*/
type Sequencer struct {
	latest  uint64
	applied uint64
}

// Begin 發出新序號, 之前所有未完成的請求都會變成 superseded
func (s *Sequencer) Begin() uint64 {
	s.latest++
	return s.latest
}

func (s *Sequencer) IsCurrent(seq uint64) bool {
	return seq == s.latest
}

// Resolve 請求完成時呼叫
// 回傳 Applied 代表呼叫端應該套用結果, Superseded 代表要丟棄
func (s *Sequencer) Resolve(seq uint64) RequestState {
	if seq != s.latest {
		return RequestState{Phase: PhaseSuperseded}
	}
	s.applied = seq
	return RequestState{Phase: PhaseApplied, Seq: seq}
}

// Current 最新請求的狀態
func (s *Sequencer) Current() RequestState {
	switch {
	case s.latest == 0:
		return RequestState{Phase: PhaseIdle}
	case s.applied == s.latest:
		return RequestState{Phase: PhaseApplied, Seq: s.latest}
	default:
		return RequestState{Phase: PhaseInflight, Seq: s.latest}
	}
}

func (s *Sequencer) Latest() uint64 {
	return s.latest
}
