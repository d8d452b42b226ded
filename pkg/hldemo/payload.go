package hldemo

func decodeDemoStart(*reader) (FrameData, error) {
	return DemoStartData{}, nil
}

func decodeNextSection(*reader) (FrameData, error) {
	return NextSectionData{}, nil
}

func decodeConsoleCommand(r *reader) (FrameData, error) {
	cmd, err := r.readN(commandSize)
	if err != nil {
		return nil, err
	}
	return &ConsoleCommandData{Command: cmd}, nil
}

func decodeClientData(r *reader) (FrameData, error) {
	var (
		d   ClientData
		err error
	)
	if d.Origin, err = r.readVec3(); err != nil {
		return nil, err
	}
	if d.ViewAngles, err = r.readVec3(); err != nil {
		return nil, err
	}
	if d.WeaponBits, err = r.readI32(); err != nil {
		return nil, err
	}
	if d.FOV, err = r.readF32(); err != nil {
		return nil, err
	}
	return &d, nil
}

func decodeEvent(r *reader) (FrameData, error) {
	var (
		d   EventData
		err error
	)
	if d.Flags, err = r.readI32(); err != nil {
		return nil, err
	}
	if d.Index, err = r.readI32(); err != nil {
		return nil, err
	}
	if d.Delay, err = r.readF32(); err != nil {
		return nil, err
	}
	if d.Args, err = decodeEventArgs(r); err != nil {
		return nil, err
	}
	return &d, nil
}

func decodeEventArgs(r *reader) (EventArgs, error) {
	var (
		a   EventArgs
		err error
	)
	if a.Flags, err = r.readI32(); err != nil {
		return a, err
	}
	if a.EntityIndex, err = r.readI32(); err != nil {
		return a, err
	}
	if a.Origin, err = r.readVec3(); err != nil {
		return a, err
	}
	if a.Angles, err = r.readVec3(); err != nil {
		return a, err
	}
	if a.Velocity, err = r.readVec3(); err != nil {
		return a, err
	}
	if a.Ducking, err = r.readI32(); err != nil {
		return a, err
	}
	if a.FParam1, err = r.readF32(); err != nil {
		return a, err
	}
	if a.FParam2, err = r.readF32(); err != nil {
		return a, err
	}
	if a.IParam1, err = r.readI32(); err != nil {
		return a, err
	}
	if a.IParam2, err = r.readI32(); err != nil {
		return a, err
	}
	if a.BParam1, err = r.readI32(); err != nil {
		return a, err
	}
	if a.BParam2, err = r.readI32(); err != nil {
		return a, err
	}
	return a, nil
}

func decodeWeaponAnim(r *reader) (FrameData, error) {
	var (
		d   WeaponAnimData
		err error
	)
	if d.Anim, err = r.readI32(); err != nil {
		return nil, err
	}
	if d.Body, err = r.readI32(); err != nil {
		return nil, err
	}
	return &d, nil
}

func decodeSound(r *reader) (FrameData, error) {
	var (
		d   SoundData
		err error
	)
	if d.Channel, err = r.readI32(); err != nil {
		return nil, err
	}
	if d.Sample, err = r.readBytes("sound sample", 0, -1); err != nil {
		return nil, err
	}
	if d.Attenuation, err = r.readF32(); err != nil {
		return nil, err
	}
	if d.Volume, err = r.readF32(); err != nil {
		return nil, err
	}
	if d.Flags, err = r.readI32(); err != nil {
		return nil, err
	}
	if d.Pitch, err = r.readI32(); err != nil {
		return nil, err
	}
	return &d, nil
}

func decodeDemoBuffer(r *reader) (FrameData, error) {
	buf, err := r.readBytes("demo buffer", 0, -1)
	if err != nil {
		return nil, err
	}
	return &DemoBufferData{Buffer: buf}, nil
}
