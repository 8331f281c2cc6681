// This file is part of sacnmonitor.
//
// sacnmonitor is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sacnmonitor is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with sacnmonitor.  If not, see <https://www.gnu.org/licenses/>.

// Package receiver receives sACN (E1.31) packets from the network and
// converts data packets into frames. It is a thin layer over the go-sacn
// package.
//
// The receiver joins the multicast group of every monitored universe and of
// the universe discovery universe. Frames are passed to the handler function
// from the goroutines of the go-sacn receiver. Discovery packets are logged.
package receiver

import (
	"fmt"
	"net"
	"strings"
	"sync"
	"sync/atomic"

	"gitlab.com/patopest/go-sacn"
	"gitlab.com/patopest/go-sacn/packet"

	"github.com/sacnmonitor/sacnmonitor/curated"
	"github.com/sacnmonitor/sacnmonitor/dmx"
	"github.com/sacnmonitor/sacnmonitor/logger"
)

// Sentinal error patterns.
const (
	NoInterface    = "receiver: no network interface (%s): %v"
	CannotReceive  = "receiver: cannot create receiver: %v"
	NoHandler      = "receiver: no frame handler"
	NoUniverseList = "receiver: no universes"
)

// FrameHandler is called for every data packet received.
type FrameHandler func(dmx.Frame)

// the universe used by sources to announce the universes they send.
var discoveryUniverse = uint16(sacn.DISCOVERY_UNIVERSE)

// network is the part of the go-sacn receiver that manages multicast groups
// and the receiving goroutines.
type network struct {
	join  func(u uint16)
	leave func(u uint16)
	start func()
	stop  func()
}

func sacnNetwork(recv *sacn.Receiver) network {
	return network{
		join:  func(u uint16) { recv.JoinUniverse(u) },
		leave: func(u uint16) { recv.LeaveUniverse(u) },
		start: func() { recv.Start() },
		stop:  func() { recv.Stop() },
	}
}

// Receiver of sACN packets.
type Receiver struct {
	nw        network
	universes []dmx.Universe
	handle    FrameHandler

	stopOnce sync.Once

	// number of data and discovery packets received
	packets   atomic.Uint64
	discovery atomic.Uint64
}

// NewReceiver is the preferred method of initialisation for the Receiver
// type. The itfName argument is the name of the network interface to receive
// on. An empty name uses the default multicast interface.
func NewReceiver(itfName string, universes []dmx.Universe, handle FrameHandler) (*Receiver, error) {
	if handle == nil {
		return nil, curated.Errorf(NoHandler)
	}
	if len(universes) == 0 {
		return nil, curated.Errorf(NoUniverseList)
	}

	var itf *net.Interface
	if itfName != "" {
		var err error
		itf, err = net.InterfaceByName(itfName)
		if err != nil {
			return nil, curated.Errorf(NoInterface, itfName, err)
		}
	}

	recv, err := sacn.NewReceiver(itf)
	if err != nil {
		return nil, curated.Errorf(CannotReceive, err)
	}

	r := &Receiver{
		nw:        sacnNetwork(recv),
		universes: universes,
		handle:    handle,
	}

	recv.RegisterPacketCallback(packet.PacketTypeData, r.dataPacket)
	recv.RegisterPacketCallback(packet.PacketTypeDiscovery, r.discoveryPacket)

	return r, nil
}

// Start receiving. Joins the multicast group of every universe.
func (r *Receiver) Start() {
	for _, u := range r.universes {
		r.nw.join(uint16(u))
		logger.Logf(logger.Allow, "receiver", "joined %s", u)
	}
	r.nw.join(discoveryUniverse)
	r.nw.start()
}

// Stop receiving. Every multicast group is left before the go-sacn receiver
// is stopped. Safe to call more than once.
func (r *Receiver) Stop() {
	r.stopOnce.Do(func() {
		for _, u := range r.universes {
			r.nw.leave(uint16(u))
		}
		r.nw.leave(discoveryUniverse)
		r.nw.stop()
		logger.Logf(logger.Allow, "receiver", "stopped after %d data packets", r.packets.Load())
	})
}

// Packets returns the number of data packets received.
func (r *Receiver) Packets() uint64 {
	return r.packets.Load()
}

func (r *Receiver) dataPacket(p packet.SACNPacket, _ sacn.PacketInfo) {
	d, ok := p.(*packet.DataPacket)
	if !ok {
		return
	}
	r.packets.Add(1)
	r.handle(NewFrame(dmx.Universe(d.Universe), d.GetData()))
}

func (r *Receiver) discoveryPacket(p packet.SACNPacket, info sacn.PacketInfo) {
	d, ok := p.(*packet.DiscoveryPacket)
	if !ok {
		return
	}
	r.discovery.Add(1)

	universes := make([]dmx.Universe, 0, d.GetNumUniverses())
	for i := 0; i < d.GetNumUniverses(); i++ {
		universes = append(universes, dmx.Universe(d.Universes[i]))
	}

	logger.Logf(logger.Allow, "receiver", "discovered %s: %s",
		sourceName(d.SourceName[:]), UniverseList(universes))
}

// NewFrame creates a frame from the data of a packet. The data is copied.
// Data longer than dmx.NumOutputs is truncated.
func NewFrame(u dmx.Universe, data []byte) dmx.Frame {
	if len(data) > dmx.NumOutputs {
		data = data[:dmx.NumOutputs]
	}
	f := dmx.Frame{
		Universe: u,
		Levels:   make([]dmx.Level, len(data)),
	}
	for i, b := range data {
		f.Levels[i] = dmx.Level(b)
	}
	return f
}

// UniverseList returns the universes as a comma separated string.
func UniverseList(universes []dmx.Universe) string {
	s := make([]string, len(universes))
	for i, u := range universes {
		s[i] = fmt.Sprintf("%d", u)
	}
	return strings.Join(s, ", ")
}

// source names are fixed length and padded with zero bytes.
func sourceName(b []byte) string {
	return strings.TrimRight(string(b), "\x00")
}
