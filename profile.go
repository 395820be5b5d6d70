package rxkit

import (
	"fmt"
	"time"
)

type Profile struct {
	name               string
	startTime, endTime time.Time
	duration           time.Duration
}

func startProfile(name string) *Profile {
	return &Profile{name: name, startTime: time.Now()}
}

func (p *Profile) Stop() time.Duration {
	p.endTime = time.Now()
	p.duration = p.endTime.Sub(p.startTime)
	return p.duration
}

func (p *Profile) String() string {
	return fmt.Sprintf("%s: %s", p.name, p.duration)
}
