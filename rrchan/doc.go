// Package rrchan provides round-robin channel with single Sender and
// any number of Receivers.
//
// Every value sent is delivered to exactly one Receiver. Sender rotates
// through receivers, so n consecutive sends to n receivers deliver one value
// to each of them. Receivers can be added at any time with
// Sender.AddReceiver, and they join rotation as last one.
//
// Sending never blocks: every Receiver has its own unbounded queue, and values
// sent to the same Receiver are received in the order they were sent.
// A Receiver that is closed (or garbage collected) is removed from rotation
// the next time Sender attempts to send to it, and value goes to next
// receiver instead. When no receiver is left, Send returns
// *UndeliverableError holding the value.
//
//	s, r0 := rrchan.New[int]()
//	r1 := s.AddReceiver()
//
//	go func() {
//		for v := range r1.All() {
//			fmt.Println("r1", v)
//		}
//	}()
//
//	s.Send(1) // goes to r1
//	s.Send(2) // goes to r0
//
// Sender is not safe for concurrent use. Dispatcher can be used when values
// come from native channel and receivers are added concurrently.
package rrchan
