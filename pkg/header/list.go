/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package header

// headerList keeps entries in insertion order, with all pseudo headers
// (key starting with ':') in front of the regular ones. HTTP/2 requires the
// pseudo headers to be sent first, keeping them in front here avoids sorting
// on every encode.
//
// pseudoEnd is the first regular entry, or root when there is none.
type headerList struct {
	root      *Entry
	pseudoEnd *Entry
	len       int
}

func (l *headerList) init() {
	root := &Entry{slot: noSlot}
	root.next = root
	root.prev = root
	l.root = root
	l.pseudoEnd = root
	l.len = 0
}

func (l *headerList) lazyInit() {
	if l.root == nil {
		l.init()
	}
}

func (l *headerList) insertBefore(e, at *Entry) {
	e.prev = at.prev
	e.next = at
	at.prev.next = e
	at.prev = e
	e.root = l.root
	l.len++
}

// insert links e at the end of its partition and returns it.
func (l *headerList) insert(e *Entry) *Entry {
	l.lazyInit()
	if e.IsPseudo() {
		l.insertBefore(e, l.pseudoEnd)
		return e
	}
	l.insertBefore(e, l.root)
	if l.pseudoEnd == l.root {
		l.pseudoEnd = e
	}
	return e
}

// erase unlinks e and returns the entry following it, or nil.
func (l *headerList) erase(e *Entry) *Entry {
	if l.root == nil || e.root != l.root {
		return nil
	}
	next := e.nextEntry()
	// move the boundary first, it must never point at an unlinked entry
	if l.pseudoEnd == e {
		l.pseudoEnd = e.next
	}
	e.prev.next = e.next
	e.next.prev = e.prev
	e.prev = nil
	e.next = nil
	e.root = nil
	l.len--
	return next
}

// removeIf erases every entry matching pred and returns how many were erased.
func (l *headerList) removeIf(pred func(e *Entry) bool) int {
	removed := 0
	for e := l.front(); e != nil; {
		if pred(e) {
			e = l.erase(e)
			removed++
			continue
		}
		e = e.nextEntry()
	}
	return removed
}

func (l *headerList) front() *Entry {
	if l.len == 0 {
		return nil
	}
	return l.root.next
}

func (l *headerList) back() *Entry {
	if l.len == 0 {
		return nil
	}
	return l.root.prev
}

func (l *headerList) size() int {
	return l.len
}

func (l *headerList) empty() bool {
	return l.len == 0
}

func (l *headerList) clear() {
	for e := l.front(); e != nil; {
		next := e.nextEntry()
		e.prev = nil
		e.next = nil
		e.root = nil
		e = next
	}
	l.init()
}
